package handlers

import (
	"context"
	"log"
	"os"
	"time"

	"app/config"
	"app/database"
	"app/models"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"
)

func createJWT(userID, role string) (string, error) {
	claims := models.JwtClaims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(72 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.AppConfig.JWTSecret))
}

// HandleLogin authenticates an operator and returns a JWT token.
// POST /api/v1/auth/login
func HandleLogin(c *fiber.Ctx) error {
	var req models.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Cuerpo de la solicitud inválido"})
	}

	var usuario models.Usuario
	var passwordHash string
	query := `
		SELECT id, nombre, email, password_hash, rol, activo, created_at, updated_at
		FROM usuarios
		WHERE email = $1`

	err := database.GetDB().QueryRow(context.Background(), query, req.Email).Scan(
		&usuario.ID, &usuario.Nombre, &usuario.Email, &passwordHash,
		&usuario.Rol, &usuario.Activo, &usuario.CreatedAt, &usuario.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"status": "error", "message": "Credenciales inválidas"})
		}
		log.Printf("Database error during login for email %s: %v", req.Email, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Error de base de datos"})
	}

	if !usuario.Activo {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"status": "error", "message": "La cuenta está desactivada"})
	}

	if err := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(req.Password)); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"status": "error", "message": "Credenciales inválidas"})
	}

	token, err := createJWT(usuario.ID, usuario.Rol)
	if err != nil {
		log.Printf("Error creating JWT for user %s: %v", usuario.ID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "No se pudo firmar el token"})
	}

	return c.JSON(fiber.Map{"accessToken": token, "usuario": usuario})
}

// HandleInitializeAdmin creates the first superadmin when the system has
// none. Gated by the INIT_TOKEN env var so the endpoint is inert once the
// setup wizard has run.
// POST /api/v1/auth/initialize
func HandleInitializeAdmin(c *fiber.Ctx) error {
	initToken := os.Getenv("INIT_TOKEN")
	if initToken == "" {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"status": "error", "message": "INIT_TOKEN no configurado"})
	}
	if c.Get("X-Init-Token") != initToken {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"status": "error", "message": "Token de inicialización inválido"})
	}

	var req models.CreateUsuarioRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Cuerpo de la solicitud inválido"})
	}
	if req.Nombre == "" || req.Email == "" || req.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Faltan campos obligatorios (nombre, email, password)"})
	}

	ctx := context.Background()
	var existing int
	if err := database.GetDB().QueryRow(ctx, "SELECT COUNT(*) FROM usuarios WHERE rol = 'superadmin'").Scan(&existing); err != nil {
		log.Printf("Error checking for existing superadmin: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Error de base de datos"})
	}
	if existing > 0 {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"status": "error", "message": "El sistema ya fue inicializado"})
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "No se pudo procesar la contraseña"})
	}

	var usuario models.Usuario
	query := `
		INSERT INTO usuarios (nombre, email, password_hash, rol)
		VALUES ($1, $2, $3, 'superadmin')
		RETURNING id, nombre, email, rol, activo, created_at, updated_at`
	err = database.GetDB().QueryRow(ctx, query, req.Nombre, req.Email, string(hashedPassword)).Scan(
		&usuario.ID, &usuario.Nombre, &usuario.Email, &usuario.Rol,
		&usuario.Activo, &usuario.CreatedAt, &usuario.UpdatedAt,
	)
	if err != nil {
		log.Printf("Error creating initial superadmin: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "No se pudo crear el usuario"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"status": "success", "data": usuario})
}

// HandleChangeOwnPassword lets any authenticated operator change their own
// password after confirming the current one.
// PUT /api/v1/auth/password
func HandleChangeOwnPassword(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(string)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"status": "error", "message": "No autenticado"})
	}

	var req models.ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Cuerpo de la solicitud inválido"})
	}
	if len(req.PasswordNueva) < 8 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "La nueva contraseña debe tener al menos 8 caracteres"})
	}

	ctx := context.Background()
	var currentHash string
	err := database.GetDB().QueryRow(ctx, "SELECT password_hash FROM usuarios WHERE id = $1", userID).Scan(&currentHash)
	if err != nil {
		log.Printf("Error fetching password hash for user %s: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Error de base de datos"})
	}

	if err := bcrypt.CompareHashAndPassword([]byte(currentHash), []byte(req.PasswordActual)); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"status": "error", "message": "La contraseña actual no coincide"})
	}

	newHash, err := bcrypt.GenerateFromPassword([]byte(req.PasswordNueva), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Error hashing new password: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "No se pudo procesar la contraseña"})
	}

	_, err = database.GetDB().Exec(ctx, "UPDATE usuarios SET password_hash = $1, updated_at = NOW() WHERE id = $2", string(newHash), userID)
	if err != nil {
		log.Printf("Error updating password for user %s: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "No se pudo actualizar la contraseña"})
	}

	return c.JSON(fiber.Map{"status": "success", "message": "Contraseña actualizada"})
}
