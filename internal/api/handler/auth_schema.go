package handler

// registerRequest deliberately has no role field: any "role" key in the
// incoming JSON is discarded at bind time, so self-registration cannot
// request a privilege level at all.
type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// userPayload is the sanitized user shape returned to clients. The
// password hash never appears here.
type userPayload struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// authResponse is the envelope for both auth endpoints, success and
// failure alike.
type authResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message,omitempty"`
	Token   string       `json:"token,omitempty"`
	User    *userPayload `json:"user,omitempty"`
}
