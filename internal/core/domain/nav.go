package domain

// Link is a navigation entry.
type Link struct {
	ID    int64  `json:"id,omitempty"`
	Label string `json:"label"`
	Path  string `json:"path"`
}

// CoreLinks are rendered regardless of session or menu pages.
var CoreLinks = []Link{
	{Label: "home", Path: "/"},
	{Label: "products", Path: "/products"},
}

// NavViewModel is the render-ready navigation state.
type NavViewModel struct {
	Session          Session `json:"session"`
	DisplayName      string  `json:"display_name,omitempty"`
	CartCount        int     `json:"cart_count"`
	CoreLinks        []Link  `json:"core_links"`
	MenuLinks        []Link  `json:"menu_links"`
	ShowAuthControls bool    `json:"show_auth_controls"`
	ShowLogout       bool    `json:"show_logout"`
	ShowAdminToggle  bool    `json:"show_admin_toggle"`
}

// NewNavViewModel derives the visibility flags from the session.
func NewNavViewModel(s Session, cartCount int, menu []Link) *NavViewModel {
	if cartCount < 0 {
		cartCount = 0
	}
	if menu == nil {
		menu = []Link{}
	}
	vm := &NavViewModel{
		Session:   s,
		CartCount: cartCount,
		CoreLinks: append([]Link(nil), CoreLinks...),
		MenuLinks: menu,
	}
	vm.derive()
	return vm
}

func (vm *NavViewModel) derive() {
	user := vm.Session.User
	if !vm.Session.IsAuthenticated() {
		user = nil
	}
	vm.DisplayName = user.DisplayName()
	vm.ShowAuthControls = user == nil
	vm.ShowLogout = user != nil
	vm.ShowAdminToggle = vm.Session.Allows(CapAdminMenu)
}

// MenuLinksFromPages keeps pages flagged for the menu.
func MenuLinksFromPages(pages []Page) []Link {
	links := make([]Link, 0, len(pages))
	for _, p := range pages {
		if !p.IsInMenu {
			continue
		}
		links = append(links, Link{ID: p.ID, Label: p.Name, Path: p.MenuPath()})
	}
	return links
}
