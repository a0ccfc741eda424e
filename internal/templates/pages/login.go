package pages

import (
	"github.com/a-h/templ"

	"github.com/vangoframework/wayfarer/internal/templates/components"
)

// Login renders the sign-in page: the login form inside the branded shell.
func Login(email, errMsg string) templ.Component {
	return document("Sign in", components.AuthShell(components.LoginForm(email, errMsg)))
}
