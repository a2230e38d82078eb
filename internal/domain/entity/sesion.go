package entity

// AuthToken es la respuesta de POST /persona/login.
type AuthToken struct {
	IDToken      string `json:"idToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    string `json:"expiresIn"`
	LocalID      string `json:"localId"`
}

// Registro son los datos de alta de una persona con credenciales (POST /persona/register).
type Registro struct {
	Persona
	Password string `json:"password"`
}
