package models

// Credentials is a login/password pair. It lives only in process memory and in
// the dotenv configuration file; it is never logged.
type Credentials struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

// AuthResult is the result object of iam.auth.jwt.authenticate.
type AuthResult struct {
	Token string `json:"token"`
}
