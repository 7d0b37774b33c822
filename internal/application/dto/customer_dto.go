package dto

// CreateCustomerRequest formulario "Novo Cadastro".
type CreateCustomerRequest struct {
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// CustomerResponse cliente en respuestas.
type CustomerResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Visits  int    `json:"visits"`
	Loyalty string `json:"loyalty"`
}

// ContactResponse popover de contacto de una ordem.
type ContactResponse struct {
	OrderID  string           `json:"order_id"`
	Customer CustomerResponse `json:"customer"`
}
