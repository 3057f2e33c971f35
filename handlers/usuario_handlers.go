package handlers

import (
	"context"
	"log"
	"strconv"

	"app/database"
	"app/models"
	"app/utils"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

// HandleListUsuarios lists operators, with optional role filter and
// pagination.
// GET /api/v1/usuarios?rol=&page=&pageSize=
func HandleListUsuarios(c *fiber.Ctx) error {
	db := database.GetDB()
	ctx := context.Background()

	rolFilter := c.Query("rol")
	page, _ := strconv.Atoi(c.Query("page", "1"))
	pageSize, _ := strconv.Atoi(c.Query("pageSize", "10"))
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 10
	}

	countQuery := "SELECT COUNT(*) FROM usuarios"
	query := "SELECT id, nombre, email, rol, activo, created_at, updated_at FROM usuarios"
	var args []interface{}
	if rolFilter != "" {
		countQuery += " WHERE rol = $1"
		query += " WHERE rol = $1"
		args = append(args, rolFilter)
	}
	query += " ORDER BY created_at DESC"

	var totalItems int
	if err := db.QueryRow(ctx, countQuery, args...).Scan(&totalItems); err != nil {
		log.Printf("Error counting usuarios: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "No se pudieron obtener los usuarios"})
	}

	offset := (page - 1) * pageSize
	query += " LIMIT " + strconv.Itoa(pageSize) + " OFFSET " + strconv.Itoa(offset)

	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		log.Printf("Error querying usuarios: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "No se pudieron obtener los usuarios"})
	}
	defer rows.Close()

	usuarios := []models.Usuario{}
	for rows.Next() {
		var u models.Usuario
		if err := rows.Scan(&u.ID, &u.Nombre, &u.Email, &u.Rol, &u.Activo, &u.CreatedAt, &u.UpdatedAt); err != nil {
			log.Printf("Error scanning usuario row: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Error procesando los usuarios"})
		}
		usuarios = append(usuarios, u)
	}

	return c.JSON(fiber.Map{
		"status": "success",
		"data": fiber.Map{
			"usuarios":   usuarios,
			"pagination": utils.CreatePagination(totalItems, page, pageSize),
		},
	})
}

// HandleCreateUsuario creates an operator account. The caller must hold a
// role strictly above the one being assigned.
// POST /api/v1/usuarios
func HandleCreateUsuario(c *fiber.Ctx) error {
	actorRole, _ := c.Locals("userRole").(string)

	var req models.CreateUsuarioRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Cuerpo de la solicitud inválido"})
	}
	if req.Nombre == "" || req.Email == "" || req.Password == "" || req.Rol == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Faltan campos obligatorios (nombre, email, password, rol)"})
	}

	rol, ok := utils.ValidateAndNormalizeRole(req.Rol)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Rol desconocido: " + req.Rol})
	}
	if !utils.RoleOutranks(actorRole, rol) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"status": "error", "message": "No tenés permiso para crear este rol"})
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "No se pudo procesar la contraseña"})
	}

	var usuario models.Usuario
	query := `
		INSERT INTO usuarios (nombre, email, password_hash, rol)
		VALUES ($1, $2, $3, $4)
		RETURNING id, nombre, email, rol, activo, created_at, updated_at`
	err = database.GetDB().QueryRow(context.Background(), query, req.Nombre, req.Email, string(hashedPassword), rol).Scan(
		&usuario.ID, &usuario.Nombre, &usuario.Email, &usuario.Rol,
		&usuario.Activo, &usuario.CreatedAt, &usuario.UpdatedAt,
	)
	if err != nil {
		log.Printf("Error creating usuario: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "No se pudo crear el usuario"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"status": "success", "data": usuario})
}

// HandleUpdateUsuario updates an operator's profile, role or active flag.
// PUT /api/v1/usuarios/:userId
func HandleUpdateUsuario(c *fiber.Ctx) error {
	actorRole, _ := c.Locals("userRole").(string)
	userID := c.Params("userId")

	var req models.UpdateUsuarioRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Cuerpo de la solicitud inválido"})
	}

	ctx := context.Background()
	db := database.GetDB()

	var currentRol string
	if err := db.QueryRow(ctx, "SELECT rol FROM usuarios WHERE id = $1", userID).Scan(&currentRol); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"status": "error", "message": "Usuario no encontrado"})
	}
	if !utils.RoleOutranks(actorRole, currentRol) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"status": "error", "message": "No tenés permiso para modificar este usuario"})
	}

	rol := currentRol
	if req.Rol != "" {
		normalized, ok := utils.ValidateAndNormalizeRole(req.Rol)
		if !ok {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Rol desconocido: " + req.Rol})
		}
		if !utils.RoleOutranks(actorRole, normalized) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"status": "error", "message": "No tenés permiso para asignar este rol"})
		}
		rol = normalized
	}

	var usuario models.Usuario
	query := `
		UPDATE usuarios
		SET nombre = COALESCE(NULLIF($1, ''), nombre),
		    email = COALESCE(NULLIF($2, ''), email),
		    rol = $3,
		    activo = COALESCE($4, activo),
		    updated_at = NOW()
		WHERE id = $5
		RETURNING id, nombre, email, rol, activo, created_at, updated_at`
	err := db.QueryRow(ctx, query, req.Nombre, req.Email, rol, req.Activo, userID).Scan(
		&usuario.ID, &usuario.Nombre, &usuario.Email, &usuario.Rol,
		&usuario.Activo, &usuario.CreatedAt, &usuario.UpdatedAt,
	)
	if err != nil {
		log.Printf("Error updating usuario %s: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "No se pudo actualizar el usuario"})
	}

	return c.JSON(fiber.Map{"status": "success", "data": usuario})
}

// HandleDeleteUsuario removes an operator account.
// DELETE /api/v1/usuarios/:userId
func HandleDeleteUsuario(c *fiber.Ctx) error {
	actorID, _ := c.Locals("userID").(string)
	actorRole, _ := c.Locals("userRole").(string)
	userID := c.Params("userId")

	if userID == actorID {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "No podés eliminar tu propia cuenta"})
	}

	ctx := context.Background()
	db := database.GetDB()

	var targetRol string
	if err := db.QueryRow(ctx, "SELECT rol FROM usuarios WHERE id = $1", userID).Scan(&targetRol); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"status": "error", "message": "Usuario no encontrado"})
	}
	if !utils.RoleOutranks(actorRole, targetRol) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"status": "error", "message": "No tenés permiso para eliminar este usuario"})
	}

	if _, err := db.Exec(ctx, "DELETE FROM usuarios WHERE id = $1", userID); err != nil {
		log.Printf("Error deleting usuario %s: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "No se pudo eliminar el usuario"})
	}

	return c.JSON(fiber.Map{"status": "success", "message": "Usuario eliminado"})
}
