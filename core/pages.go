package core

// Layout is the data for the shared page shell. Content holds the already
// rendered page body and is inserted unescaped.
type Layout struct {
	Title      string    `json:"title"`
	Page       string    `json:"page"`
	Nav        []NavItem `json:"nav"`
	LiveReload bool      `json:"liveReload"`
	Content    string    `json:"content"`
}

type NavItem struct {
	Label  string `json:"label"`
	Href   string `json:"href"`
	Active bool   `json:"active"`
}

type DesktopApp struct {
	Name string `json:"name"`
	Icon string `json:"icon"`
	Href string `json:"href"`
}

type HomePage struct {
	Greeting string       `json:"greeting"`
	Apps     []DesktopApp `json:"apps"`
}

type Skill struct {
	Name string `json:"name"`
	Area string `json:"area"`
}

type AboutPage struct {
	Name   string  `json:"name"`
	Bio    string  `json:"bio"`
	Skills []Skill `json:"skills"`
}

type ContactLink struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

type ContactPage struct {
	Intro string        `json:"intro"`
	Email string        `json:"email"`
	Links []ContactLink `json:"links"`
}

// Page is one HTML route: the content template it renders and the payload
// handed to it.
type Page struct {
	Path     string
	Template string
	Title    string
	Data     func() any
}

var Pages = []Page{
	{Path: "/", Template: "home", Title: "Home", Data: func() any { return homePage() }},
	{Path: "/about", Template: "about", Title: "About", Data: func() any { return aboutPage() }},
	{Path: "/contact", Template: "contact", Title: "Contact", Data: func() any { return contactPage() }},
}

func homePage() HomePage {
	return HomePage{
		Greeting: "Welcome to my corner of the web.",
		Apps: []DesktopApp{
			{Name: "About Me", Icon: "user", Href: "/about"},
			{Name: "Contact", Icon: "mail", Href: "/contact"},
		},
	}
}

func aboutPage() AboutPage {
	return AboutPage{
		Name: "Altheman",
		Bio:  "A passionate developer working with Swift, Hummingbird, and modern web technologies.",
		Skills: []Skill{
			{Name: "Swift", Area: "Languages"},
			{Name: "Go", Area: "Languages"},
			{Name: "Hummingbird", Area: "Server"},
			{Name: "HTML & CSS", Area: "Web"},
		},
	}
}

func contactPage() ContactPage {
	return ContactPage{
		Intro: "Want to talk? Drop me a line.",
		Email: "contact@altheman.dev",
		Links: []ContactLink{
			{Label: "GitHub", URL: "https://github.com/altheman"},
			{Label: "Email", URL: "mailto:contact@altheman.dev"},
		},
	}
}

func navFor(path string) []NavItem {
	nav := make([]NavItem, 0, len(Pages))
	for _, p := range Pages {
		nav = append(nav, NavItem{Label: p.Title, Href: p.Path, Active: p.Path == path})
	}
	return nav
}
