package authValidator

import (
	"regexp"

	"docutrack/middleware"

	"github.com/gofiber/fiber/v2"
)

// Helper to validate email format: something before the @, a domain with a dot.
func isValidEmail(email string) bool {
	re := regexp.MustCompile(`^\S+@\S+\.\S+$`)
	return re.MatchString(email)
}

// PasswordsMatch reports whether the confirmation equals the password. Exposed
// separately because the match indicator is recomputed on every keystroke,
// independent of full-form validation.
func PasswordsMatch(password, confirmation string) bool {
	return password == confirmation
}

// RegisterRequest is the registration form payload.
type RegisterRequest struct {
	Name                 string `json:"name"`
	Email                string `json:"email"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"password_confirmation"`
	Terms                bool   `json:"terms"`
}

// LoginRequest is the login form payload.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Remember bool   `json:"remember"`
}

// ValidateRegister applies every registration rule and returns all violations
// keyed by field, never just the first one.
func ValidateRegister(req RegisterRequest) map[string]string {
	errors := make(map[string]string)

	if req.Name == "" {
		errors["name"] = "El nombre es requerido"
	}

	if req.Email == "" {
		errors["email"] = "El email es requerido"
	} else if !isValidEmail(req.Email) {
		errors["email"] = "Email inválido"
	}

	if req.Password == "" {
		errors["password"] = "La contraseña es requerida"
	} else if len(req.Password) < 8 {
		errors["password"] = "La contraseña debe tener al menos 8 caracteres"
	}

	if !PasswordsMatch(req.Password, req.PasswordConfirmation) {
		errors["password_confirmation"] = "Las contraseñas no coinciden"
	}

	if !req.Terms {
		errors["terms"] = "Debes aceptar los términos y condiciones"
	}

	return errors
}

// ValidateLogin applies the login rules: email presence and format, password
// presence only.
func ValidateLogin(req LoginRequest) map[string]string {
	errors := make(map[string]string)

	if req.Email == "" {
		errors["email"] = "El email es requerido"
	} else if !isValidEmail(req.Email) {
		errors["email"] = "Email inválido"
	}

	if req.Password == "" {
		errors["password"] = "La contraseña es requerida"
	}

	return errors
}

// Register validator middleware
func Register() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(RegisterRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if errors := ValidateRegister(*reqData); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		return c.Next()
	}
}

// Login validator middleware
func Login() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(LoginRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if errors := ValidateLogin(*reqData); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		return c.Next()
	}
}
