package auth

// Claims es el hecho de identidad que entrega la capa de auth externa:
// quién llama y con qué rol. El core no emite ni valida tokens.
type Claims struct {
	UserID string
	Email  string
	Role   string
}

const (
	RolePlayer = "player"
	RoleAdmin  = "admin"
)
