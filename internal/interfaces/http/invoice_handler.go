package http

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/atelier-api/internal/application/dto"
	"github.com/jhoicas/atelier-api/internal/application/usecase"
	"github.com/jhoicas/atelier-api/internal/domain"
)

// Campo del formulario con el archivo de la nota.
const invoiceFileField = "file"

// InvoiceHandler notas fiscais (protegido).
type InvoiceHandler struct {
	uc *usecase.InvoiceUseCase
}

// NewInvoiceHandler construye el handler.
func NewInvoiceHandler(uc *usecase.InvoiceUseCase) *InvoiceHandler {
	return &InvoiceHandler{uc: uc}
}

// List godoc
// @Summary      Listar notas fiscais
// @Tags         invoices
// @Security     Bearer
// @Produce      json
// @Param        q       query  string  false  "Busca por número, OS ou cliente"
// @Param        status  query  string  false  "Emitida | Cancelada | Pendente | Todos"
// @Success      200     {object}  dto.ListResponse[dto.InvoiceResponse]
// @Router       /api/admin/invoices [get]
func (h *InvoiceHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.uc.List(listQuery(c, "status")))
}

// GetByID godoc
// @Summary      Obter nota fiscal
// @Tags         invoices
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "Número da nota"
// @Success      200  {object}  dto.InvoiceResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/invoices/{id} [get]
func (h *InvoiceHandler) GetByID(c *fiber.Ctx) error {
	id, ok := textID(c)
	if !ok {
		return invalidID(c)
	}
	out, err := h.uc.Get(id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Nova nota fiscal
// @Description  Aceita JSON ou multipart/form-data (nf_id, os_ref, customer, date, value, status, file).
// @Tags         invoices
// @Security     Bearer
// @Accept       json,mpfd
// @Produce      json
// @Param        body  body      dto.CreateInvoiceRequest  false  "Dados da nota (JSON)"
// @Param        file  formData  file                      false  "Arquivo da nota"
// @Success      201   {object}  dto.InvoiceResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      502   {object}  dto.ErrorResponse
// @Router       /api/admin/invoices [post]
func (h *InvoiceHandler) Create(c *fiber.Ctx) error {
	var (
		in   dto.CreateInvoiceRequest
		file *usecase.Attachment
	)
	if strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEMultipartForm) {
		parsed, err := invoiceForm(c)
		if err != nil {
			return writeError(c, err)
		}
		in = parsed
		if fh, err := c.FormFile(invoiceFileField); err == nil {
			f, err := fh.Open()
			if err != nil {
				return invalidBody(c)
			}
			defer f.Close()
			file = &usecase.Attachment{FileName: fh.Filename, Content: f}
		}
	} else if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}

	out, err := h.uc.Create(c.Context(), in, file)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func invoiceForm(c *fiber.Ctx) (dto.CreateInvoiceRequest, error) {
	in := dto.CreateInvoiceRequest{
		ID:       c.FormValue("nf_id"),
		OrderID:  c.FormValue("os_ref"),
		Customer: c.FormValue("customer"),
		Date:     c.FormValue("date"),
		Status:   c.FormValue("status"),
	}
	if raw := strings.TrimSpace(c.FormValue("value")); raw != "" {
		v, err := decimal.NewFromString(strings.Replace(raw, ",", ".", 1))
		if err != nil {
			return in, fmt.Errorf("%w: valor %q", domain.ErrInvalidInput, raw)
		}
		in.Value = v
	}
	return in, nil
}

// Update godoc
// @Summary      Editar nota fiscal
// @Tags         invoices
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                    true  "Número da nota"
// @Param        body  body  dto.UpdateInvoiceRequest  true  "Campos a alterar"
// @Success      200   {object}  dto.InvoiceResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/admin/invoices/{id} [patch]
func (h *InvoiceHandler) Update(c *fiber.Ctx) error {
	id, ok := textID(c)
	if !ok {
		return invalidID(c)
	}
	var in dto.UpdateInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(c.Context(), id, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Excluir nota fiscal
// @Tags         invoices
// @Security     Bearer
// @Produce      json
// @Param        id       path   string  true  "Número da nota"
// @Param        confirm  query  bool    true  "Confirma a exclusão"
// @Success      200      {object}  dto.MessageResponse
// @Failure      428      {object}  dto.ErrorResponse
// @Router       /api/admin/invoices/{id} [delete]
func (h *InvoiceHandler) Delete(c *fiber.Ctx) error {
	id, ok := textID(c)
	if !ok {
		return invalidID(c)
	}
	if err := h.uc.Delete(c.Context(), id, confirmation(c)); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Nota fiscal excluída com sucesso!"})
}

// Receipt godoc
// @Summary      Recibo PDF da nota
// @Tags         invoices
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  string  true  "Número da nota"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/invoices/{id}/receipt [get]
func (h *InvoiceHandler) Receipt(c *fiber.Ctx) error {
	id, ok := textID(c)
	if !ok {
		return invalidID(c)
	}
	pdf, err := h.uc.Receipt(c.Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`inline; filename="recibo-%s.pdf"`, id))
	return c.Send(pdf)
}
