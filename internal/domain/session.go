package domain

// Settings holds the mutable application settings. Only the WhatsApp
// destination number exists today; it carries the country code with no
// leading plus sign.
type Settings struct {
	WhatsappNumber string
}

// User is an account that can log in. Password hashes never leave the auth
// layer.
type User struct {
	ID    string
	Name  string
	Email string
}

// Session is the authenticated state for one token. It carries no roles or
// expiry; the application is effectively single-user.
type Session struct {
	Token  string
	UserID string
}
