package handlers

import (
	"bytes"
	"encoding/json"
	"net/url"
	"strconv"

	"github.com/anjiri1684/questoes_api/models"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// Field is a body value decoded with loose truthiness: null, false, 0 and ""
// become the empty string, any other value becomes its text form.
type Field string

func (f *Field) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	*f = ""
	if len(data) == 0 {
		return nil
	}

	switch data[0] {
	case 'n', 'f':
		return nil
	case 't':
		*f = "true"
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = Field(s)
	case '{', '[':
		*f = Field(data)
	default:
		n, err := strconv.ParseFloat(string(data), 64)
		if err != nil {
			return err
		}
		if n != 0 {
			*f = Field(strconv.FormatFloat(n, 'f', -1, 64))
		}
	}
	return nil
}

type CreateQuestionRequest struct {
	Enunciado  Field `json:"enunciado" validate:"required"`
	Disciplina Field `json:"disciplina" validate:"required"`
	Tema       Field `json:"tema" validate:"required"`
	Nivel      Field `json:"nivel" validate:"required"`
}

// UpdateQuestionRequest fields left empty keep the stored value. An empty
// string therefore cannot be written through an update.
type UpdateQuestionRequest struct {
	Enunciado  Field `json:"enunciado"`
	Disciplina Field `json:"disciplina"`
	Tema       Field `json:"tema"`
	Nivel      Field `json:"nivel"`
}

func (r UpdateQuestionRequest) Apply(existing models.Question) models.Question {
	existing.Enunciado = orKeep(r.Enunciado, existing.Enunciado)
	existing.Disciplina = orKeep(r.Disciplina, existing.Disciplina)
	existing.Tema = orKeep(r.Tema, existing.Tema)
	existing.Nivel = orKeep(r.Nivel, existing.Nivel)
	return existing
}

type CreateUserRequest struct {
	Nome  Field `json:"nome" validate:"required"`
	Email Field `json:"email" validate:"required"`
	Senha Field `json:"senha" validate:"required"`
}

// UpdateUserRequest follows the same keep-on-empty rule as questions.
type UpdateUserRequest struct {
	Nome  Field `json:"nome"`
	Email Field `json:"email"`
	Senha Field `json:"senha"`
}

func (r UpdateUserRequest) Apply(existing models.User) models.User {
	existing.Nome = orKeep(r.Nome, existing.Nome)
	existing.Email = orKeep(r.Email, existing.Email)
	existing.Senha = orKeep(r.Senha, existing.Senha)
	return existing
}

func orKeep(value Field, stored string) string {
	if value == "" {
		return stored
	}
	return string(value)
}

// parseBody decodes the body as JSON whatever the Content-Type says. A body
// that is absent or not valid JSON reads as {}.
func parseBody[T any](c *fiber.Ctx) T {
	var req T
	if len(c.Body()) == 0 {
		return req
	}
	if err := c.App().Config().JSONDecoder(c.Body(), &req); err != nil {
		var empty T
		return empty
	}
	return req
}

// param returns a path parameter decoded after routing, so an escaped slash
// stays inside its segment.
func param(c *fiber.Ctx, key string) string {
	raw := c.Params(key)
	value, err := url.PathUnescape(raw)
	if err != nil {
		return raw
	}
	return value
}
