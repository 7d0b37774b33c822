package http

import (
	"net/url"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/atelier-api/internal/application/store"
	"github.com/jhoicas/atelier-api/internal/domain/search"
)

// listQuery lee ?q= (texto) y ?status= / ?type= / ?category= (faceta).
func listQuery(c *fiber.Ctx, facetParam string) search.Query {
	q := search.Query{Text: c.Query("q")}
	if facetParam != "" {
		q.Facet = c.Query(facetParam)
	}
	return q
}

// confirmation ?confirm=true responde afirmativamente a la pregunta de borrado.
func confirmation(c *fiber.Ctx) store.Confirmer {
	ok := c.QueryBool("confirm", false)
	return store.ConfirmFunc(func(string) bool { return ok })
}

// textID parámetro de ruta decodificado; los IDs de ordem llevan "#" (%23 en la URL).
func textID(c *fiber.Ctx) (string, bool) {
	raw := c.Params("id")
	id, err := url.PathUnescape(raw)
	if err != nil || id == "" {
		return "", false
	}
	return id, true
}

func numericID(c *fiber.Ctx) (int64, bool) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
