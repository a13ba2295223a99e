// Package admin gates the catalog CRUD behind a shared secret. A plain
// equality check against one configured string; there are no accounts,
// sessions or lockouts, and this is not a security boundary.
package admin

const DeniedMessage = "Incorrect password. Access denied."

type Gate struct {
	secret string
}

func NewGate(secret string) *Gate { return &Gate{secret: secret} }

// Check reports whether the supplied secret grants access. An empty
// configured secret grants nothing.
func (g *Gate) Check(secret string) bool {
	return g.secret != "" && secret == g.secret
}
