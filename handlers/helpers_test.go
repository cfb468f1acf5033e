package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/anjiri1684/questoes_api/database"
	"github.com/anjiri1684/questoes_api/database/dbtest"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestApp(t *testing.T, broken bool) (*fiber.App, *database.Gateway) {
	t.Helper()

	open := dbtest.Open
	if broken {
		open = dbtest.OpenBroken
	}
	gw := database.New(open(t), zap.NewNop())

	app := fiber.New()
	qh := NewQuestionHandler(gw)
	app.Get("/questoes", qh.ListQuestions)
	app.Post("/questoes", qh.CreateQuestion)
	app.Get("/questoes/:id", qh.GetQuestion)
	app.Put("/questoes/:id", qh.UpdateQuestion)
	app.Delete("/questoes/:id", qh.DeleteQuestion)

	uh := NewUserHandler(gw, zap.NewNop())
	app.Get("/usuarios", uh.ListUsers)
	app.Post("/usuarios", uh.CreateUser)
	app.Get("/usuarios/email/:email", uh.GetUserByEmail)
	app.Get("/usuarios/:id", uh.GetUser)
	app.Put("/usuarios/:id", uh.UpdateUser)
	app.Delete("/usuarios/:id", uh.DeleteUser)

	return app, gw
}

// do sends body as JSON when it is not nil and returns the status and raw
// response body.
func do(t *testing.T, app *fiber.App, method, path string, body any) (int, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		switch b := body.(type) {
		case string:
			reader = bytes.NewBufferString(b)
		default:
			payload, err := json.Marshal(b)
			require.NoError(t, err)
			reader = bytes.NewReader(payload)
		}
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, raw
}

func decode[T any](t *testing.T, raw []byte) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(raw, &out), string(raw))
	return out
}
