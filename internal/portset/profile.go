package portset

// DefaultProfileName identifies the built-in framework port profile.
const DefaultProfileName = "framework-default"

// DefaultPortsExpr covers the conventional dev-server ranges: Next.js and
// friends (3000-3009), Vite (5173-5182), Angular (4200-4209), and generic
// HTTP alternates (8080-8089).
const DefaultPortsExpr = "3000-3009,5173-5182,4200-4209,8080-8089"

// Profile is a named port set. Profiles are immutable after construction and
// loaded once per run.
type Profile struct {
	Name      string `json:"name"`
	PortsExpr string `json:"ports_expr"`
}

// DefaultProfile returns the built-in framework profile.
func DefaultProfile() Profile {
	return Profile{Name: DefaultProfileName, PortsExpr: DefaultPortsExpr}
}

// Ports materializes the profile's expression into a normalized port slice.
func (p Profile) Ports() ([]uint16, error) {
	return Parse(p.PortsExpr)
}
