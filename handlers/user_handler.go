package handlers

import (
	"github.com/anjiri1684/questoes_api/models"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const msgUserNotFound = "Usuário não encontrado"

type UserHandler struct {
	db  Gateway
	log *zap.Logger
}

func NewUserHandler(db Gateway, log *zap.Logger) *UserHandler {
	return &UserHandler{db: db, log: log}
}

func (h *UserHandler) ListUsers(c *fiber.Ctx) error {
	users := []models.User{}
	if err := h.db.Query(c.UserContext(), &users, "SELECT * FROM usuarios ORDER BY id ASC"); err != nil {
		return errorJSON(c, fiber.StatusInternalServerError, "Erro ao buscar usuários")
	}
	return c.JSON(users)
}

func (h *UserHandler) GetUser(c *fiber.Ctx) error {
	user, found, err := h.findBy(c, "id", param(c, "id"))
	if err != nil {
		return errorJSON(c, fiber.StatusInternalServerError, "Erro ao buscar usuário")
	}
	if !found {
		return messageJSON(c, fiber.StatusNotFound, msgUserNotFound)
	}
	return c.JSON(user)
}

func (h *UserHandler) GetUserByEmail(c *fiber.Ctx) error {
	email := param(c, "email")

	user, found, err := h.findBy(c, "email", email)
	if err != nil {
		h.log.Error("Erro ao buscar usuário por e-mail", zap.String("email", email), zap.Error(err))
		return errorJSON(c, fiber.StatusInternalServerError, "Erro interno ao buscar usuário")
	}
	if !found {
		return messageJSON(c, fiber.StatusNotFound, "Usuário não encontrado com esse e-mail")
	}
	return c.JSON(user)
}

func (h *UserHandler) CreateUser(c *fiber.Ctx) error {
	req := parseBody[CreateUserRequest](c)
	if err := validate.Struct(req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, msgMissingFields)
	}

	err := h.db.Exec(c.UserContext(),
		"INSERT INTO usuarios (nome, email, senha) VALUES (?, ?, ?)",
		string(req.Nome), string(req.Email), string(req.Senha))
	if err != nil {
		h.log.Error("Erro ao criar usuário", zap.Error(err))
		return errorJSON(c, fiber.StatusInternalServerError, "Erro ao criar usuário")
	}
	return messageJSON(c, fiber.StatusCreated, "Usuário criado com sucesso!")
}

func (h *UserHandler) UpdateUser(c *fiber.Ctx) error {
	id := param(c, "id")

	req := parseBody[UpdateUserRequest](c)

	existing, found, err := h.findBy(c, "id", id)
	if err != nil {
		return errorJSON(c, fiber.StatusInternalServerError, "Erro ao atualizar usuário")
	}
	if !found {
		return messageJSON(c, fiber.StatusNotFound, msgUserNotFound)
	}

	updated := req.Apply(existing)
	err = h.db.Exec(c.UserContext(),
		"UPDATE usuarios SET nome = ?, email = ?, senha = ? WHERE id = ?",
		updated.Nome, updated.Email, updated.Senha, id)
	if err != nil {
		return errorJSON(c, fiber.StatusInternalServerError, "Erro ao atualizar usuário")
	}
	return messageJSON(c, fiber.StatusOK, "Usuário atualizado com sucesso!")
}

func (h *UserHandler) DeleteUser(c *fiber.Ctx) error {
	id := param(c, "id")

	_, found, err := h.findBy(c, "id", id)
	if err != nil {
		return errorJSON(c, fiber.StatusInternalServerError, "Erro ao excluir usuário")
	}
	if !found {
		return messageJSON(c, fiber.StatusNotFound, msgUserNotFound)
	}

	if err := h.db.Exec(c.UserContext(), "DELETE FROM usuarios WHERE id = ?", id); err != nil {
		return errorJSON(c, fiber.StatusInternalServerError, "Erro ao excluir usuário")
	}
	return messageJSON(c, fiber.StatusOK, "Usuário excluído com sucesso!")
}

// findBy looks a user up by a fixed column name; only the value is a parameter.
func (h *UserHandler) findBy(c *fiber.Ctx, column, value string) (models.User, bool, error) {
	var stmt string
	switch column {
	case "email":
		stmt = "SELECT * FROM usuarios WHERE email = ?"
	default:
		stmt = "SELECT * FROM usuarios WHERE id = ?"
	}

	var rows []models.User
	if err := h.db.Query(c.UserContext(), &rows, stmt, value); err != nil {
		return models.User{}, false, err
	}
	if len(rows) == 0 {
		return models.User{}, false, nil
	}
	return rows[0], true, nil
}
