package authController

import (
	"encoding/json"
	"log"
	"sync/atomic"

	"docutrack/middleware"
	authValidator "docutrack/validators/auth"

	"github.com/go-resty/resty/v2"
	"github.com/gofiber/fiber/v2"
)

// Controller proxies the login and registration forms to the external
// authentication service. Credentials are never stored or hashed here.
type Controller struct {
	client *resty.Client

	// One outstanding upstream call per form at a time
	loginBusy    atomic.Bool
	registerBusy atomic.Bool
}

func New(authServiceURL string) *Controller {
	return &Controller{
		client: resty.New().SetBaseURL(authServiceURL),
	}
}

// upstreamMessage pulls the optional message field out of an auth-service
// response body.
func upstreamMessage(body []byte) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	return payload.Message
}

func isSuccess(code int) bool {
	return code >= 200 && code < 300
}

// Login forwards the credentials to the auth service and mints a session token
// on success.
func (ctrl *Controller) Login(c *fiber.Ctx) error {
	reqData := new(authValidator.LoginRequest)
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Failed to parse request body!", nil)
	}

	if !ctrl.loginBusy.CompareAndSwap(false, true) {
		return middleware.JsonResponse(c, fiber.StatusTooManyRequests, false, "Ya hay un envío en curso, espera a que termine", nil)
	}
	defer ctrl.loginBusy.Store(false)

	resp, err := ctrl.client.R().
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{
			"email":    reqData.Email,
			"password": reqData.Password,
		}).
		Post("/api/login")
	if err != nil {
		log.Printf("Error calling auth service: %v", err)
		return middleware.JsonResponse(c, fiber.StatusServiceUnavailable, false, "Error de conexión con el servidor", nil)
	}

	if !isSuccess(resp.StatusCode()) {
		message := upstreamMessage(resp.Body())
		if message == "" {
			message = "Error al iniciar sesión"
		}
		return middleware.JsonResponse(c, resp.StatusCode(), false, message, nil)
	}

	var usuario map[string]interface{}
	if err := json.Unmarshal(resp.Body(), &usuario); err != nil {
		usuario = nil
	}
	name, _ := usuario["name"].(string)

	token, err := middleware.GenerateJWT(name, reqData.Email)
	if err != nil {
		log.Printf("Error generating session token: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Error al iniciar sesión", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Login exitoso!", fiber.Map{
		"token":   token,
		"usuario": usuario,
	})
}

// Register forwards the registration to the auth service. The confirmation and
// terms fields are form-side only and are not sent upstream.
func (ctrl *Controller) Register(c *fiber.Ctx) error {
	reqData := new(authValidator.RegisterRequest)
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Failed to parse request body!", nil)
	}

	if !ctrl.registerBusy.CompareAndSwap(false, true) {
		return middleware.JsonResponse(c, fiber.StatusTooManyRequests, false, "Ya hay un envío en curso, espera a que termine", nil)
	}
	defer ctrl.registerBusy.Store(false)

	resp, err := ctrl.client.R().
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{
			"name":     reqData.Name,
			"email":    reqData.Email,
			"password": reqData.Password,
		}).
		Post("/api/register")
	if err != nil {
		log.Printf("Error calling auth service: %v", err)
		return middleware.JsonResponse(c, fiber.StatusServiceUnavailable, false, "Error de conexión con el servidor", nil)
	}

	if !isSuccess(resp.StatusCode()) {
		message := upstreamMessage(resp.Body())
		if message == "" {
			message = "Error al registrarse"
		}
		return middleware.JsonResponse(c, resp.StatusCode(), false, message, nil)
	}

	var usuario map[string]interface{}
	if err := json.Unmarshal(resp.Body(), &usuario); err != nil {
		usuario = nil
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Usuario registrado exitosamente", usuario)
}

// PasswordMatch backs the live match indicator next to the confirmation field.
func (ctrl *Controller) PasswordMatch(c *fiber.Ctx) error {
	match := authValidator.PasswordsMatch(c.Query("password"), c.Query("confirmation"))
	return middleware.JsonResponse(c, fiber.StatusOK, true, "", fiber.Map{
		"match": match,
	})
}
