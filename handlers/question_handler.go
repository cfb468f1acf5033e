package handlers

import (
	"github.com/anjiri1684/questoes_api/models"
	"github.com/gofiber/fiber/v2"
)

const msgQuestionNotFound = "Questão não encontrada"

type QuestionHandler struct {
	db Gateway
}

func NewQuestionHandler(db Gateway) *QuestionHandler {
	return &QuestionHandler{db: db}
}

func (h *QuestionHandler) ListQuestions(c *fiber.Ctx) error {
	questions := []models.Question{}
	if err := h.db.Query(c.UserContext(), &questions, "SELECT * FROM questoes"); err != nil {
		return errorJSON(c, fiber.StatusInternalServerError, "Erro ao buscar questões")
	}
	return c.JSON(questions)
}

func (h *QuestionHandler) GetQuestion(c *fiber.Ctx) error {
	question, found, err := h.find(c, param(c, "id"))
	if err != nil {
		return errorJSON(c, fiber.StatusInternalServerError, "Erro interno do servidor")
	}
	if !found {
		return messageJSON(c, fiber.StatusNotFound, msgQuestionNotFound)
	}
	return c.JSON(question)
}

func (h *QuestionHandler) CreateQuestion(c *fiber.Ctx) error {
	req := parseBody[CreateQuestionRequest](c)
	if err := validate.Struct(req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, msgMissingFields)
	}

	err := h.db.Exec(c.UserContext(),
		"INSERT INTO questoes (enunciado, disciplina, tema, nivel) VALUES (?, ?, ?, ?)",
		string(req.Enunciado), string(req.Disciplina), string(req.Tema), string(req.Nivel))
	if err != nil {
		return errorJSON(c, fiber.StatusInternalServerError, "Erro ao criar questão")
	}
	return messageJSON(c, fiber.StatusCreated, "Questão criada com sucesso!")
}

func (h *QuestionHandler) UpdateQuestion(c *fiber.Ctx) error {
	id := param(c, "id")

	req := parseBody[UpdateQuestionRequest](c)

	existing, found, err := h.find(c, id)
	if err != nil {
		return errorJSON(c, fiber.StatusInternalServerError, "Erro ao atualizar questão")
	}
	if !found {
		return messageJSON(c, fiber.StatusNotFound, msgQuestionNotFound)
	}

	updated := req.Apply(existing)
	err = h.db.Exec(c.UserContext(),
		"UPDATE questoes SET enunciado = ?, disciplina = ?, tema = ?, nivel = ? WHERE id = ?",
		updated.Enunciado, updated.Disciplina, updated.Tema, updated.Nivel, id)
	if err != nil {
		return errorJSON(c, fiber.StatusInternalServerError, "Erro ao atualizar questão")
	}
	return messageJSON(c, fiber.StatusOK, "Questão atualizada com sucesso!")
}

func (h *QuestionHandler) DeleteQuestion(c *fiber.Ctx) error {
	id := param(c, "id")

	_, found, err := h.find(c, id)
	if err != nil {
		return errorJSON(c, fiber.StatusInternalServerError, "Erro ao excluir questão")
	}
	if !found {
		return messageJSON(c, fiber.StatusNotFound, msgQuestionNotFound)
	}

	if err := h.db.Exec(c.UserContext(), "DELETE FROM questoes WHERE id = ?", id); err != nil {
		return errorJSON(c, fiber.StatusInternalServerError, "Erro ao excluir questão")
	}
	return messageJSON(c, fiber.StatusOK, "Questão excluída com sucesso!")
}

func (h *QuestionHandler) find(c *fiber.Ctx, id string) (models.Question, bool, error) {
	var rows []models.Question
	if err := h.db.Query(c.UserContext(), &rows, "SELECT * FROM questoes WHERE id = ?", id); err != nil {
		return models.Question{}, false, err
	}
	if len(rows) == 0 {
		return models.Question{}, false, nil
	}
	return rows[0], true, nil
}
