package console

import (
	"context"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/Deyvidbru/serido-hub/internal/backend"
	"github.com/Deyvidbru/serido-hub/internal/http/validation"
	"github.com/Deyvidbru/serido-hub/internal/modules/catalog"
	"github.com/Deyvidbru/serido-hub/internal/shared/apperr"
	"github.com/Deyvidbru/serido-hub/pkg/view"
	"github.com/Deyvidbru/serido-hub/templates/shared"
)

// FormInput is the raw create/edit submission. Numeric fields arrive as the
// user typed them; parsing happens during validation so a bad value never
// reaches the network.
type FormInput struct {
	ID        string `form:"id"`
	Nome      string `form:"nome" validate:"required"`
	Descricao string `form:"descricao"`
	Preco     string `form:"preco" validate:"required,preco_brl"`
	Estoque   string `form:"estoque" validate:"required,estoque"`
	Categoria string `form:"categoria"`
	ImagemURL string `form:"imagemUrl"`
	Ativo     bool   `form:"ativo"`
}

var formValidator = newFormValidator()

func newFormValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("preco_brl", func(fl validator.FieldLevel) bool {
		_, ok := ParsePrice(fl.Field().String())
		return ok
	})
	_ = v.RegisterValidation("estoque", func(fl validator.FieldLevel) bool {
		_, ok := ParseStock(fl.Field().String())
		return ok
	})
	return v
}

// ParsePrice accepts a comma or dot decimal separator and requires a finite
// value above zero.
func ParsePrice(s string) (float64, bool) {
	s = strings.Replace(strings.TrimSpace(s), ",", ".", 1)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return 0, false
	}
	return v, true
}

// ParseStock requires a non-negative integer.
func ParseStock(s string) (int, bool) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || v < 0 {
		return 0, false
	}
	return v, true
}

func fieldMessages(err error, in FormInput) map[string]string {
	out := validation.FromValidationError(err, &in)
	// the generic required message reads poorly on the headline field
	if _, ok := out["nome"]; ok {
		out["nome"] = "Informe o nome do produto."
	}
	return out
}

// SaveResult reports a successful create/update.
type SaveResult struct {
	Created bool
	Message string
	// CloseAfter is how long the dialog stays open showing the message.
	CloseAfter time.Duration
}

// Save validates and submits a create (no id) or update (tracked id). On
// success the dialog closes after the configured delay; the navigation that
// follows owns the full reload via Load, so no optimistic local patch
// happens here.
func (c *Controller) Save(ctx context.Context, in FormInput) (SaveResult, error) {
	c.mu.Lock()

	if c.submitting {
		// Known gap upstream: nothing in the old UI stopped a double submit.
		// Here an overlapping submission is refused outright.
		c.mu.Unlock()
		return SaveResult{}, apperr.InvalidErr("Já existe um envio em andamento.", map[string]string{"_": "Aguarde o envio atual terminar."})
	}

	c.form = formFromInput(in)
	c.formSel = in.Categoria

	if err := formValidator.Struct(in); err != nil {
		fields := fieldMessages(err, in)
		c.form.FieldErrors = fields
		c.form.Error = firstFieldMessage(fields)
		c.mu.Unlock()
		return SaveResult{}, apperr.InvalidErr(c.form.Error, fields)
	}

	preco, _ := ParsePrice(in.Preco)
	estoque, _ := ParseStock(in.Estoque)
	payload := backend.ProductInput{
		Nome:        strings.TrimSpace(in.Nome),
		Descricao:   strings.TrimSpace(in.Descricao),
		Preco:       preco,
		Estoque:     estoque,
		ImagemURL:   strings.TrimSpace(in.ImagemURL),
		IDCategoria: in.Categoria,
		Ativo:       in.Ativo,
	}

	isEdit := strings.TrimSpace(in.ID) != ""
	token := c.token
	c.submitting = true
	c.mu.Unlock()

	var err error
	if isEdit {
		err = c.api.UpdateProduct(ctx, token, strings.TrimSpace(in.ID), payload)
	} else {
		err = c.api.CreateProduct(ctx, token, payload)
	}

	c.mu.Lock()
	c.submitting = false
	if err != nil {
		c.form.Error = apperr.PublicMessage(err)
		if ae, ok := apperr.As(err); ok {
			c.diag = ae.Diag
		}
		c.mu.Unlock()
		return SaveResult{}, err
	}

	msg := "Produto cadastrado com sucesso!"
	if isEdit {
		msg = "Produto atualizado com sucesso!"
	}
	c.form.Success = msg
	c.scheduleDialogClose()
	c.mu.Unlock()

	return SaveResult{Created: !isEdit, Message: msg, CloseAfter: c.cfg.CloseDelay}, nil
}

// caller holds the lock
func (c *Controller) scheduleDialogClose() {
	c.form.Open = true
	c.stopCloseTimer()
	var timer *time.Timer
	timer = time.AfterFunc(c.cfg.CloseDelay, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		// the user may have opened another dialog meanwhile; only the
		// current timer closes anything
		if c.closeTimer != timer {
			return
		}
		c.closeTimer = nil
		c.form = blankForm()
		c.formSel = ""
	})
	c.closeTimer = timer
}

// caller holds the lock
func (c *Controller) stopCloseTimer() {
	if c.closeTimer != nil {
		c.closeTimer.Stop()
		c.closeTimer = nil
	}
}

// DeleteResult distinguishes a decline (no network) from a removal.
type DeleteResult struct {
	Declined bool
	Removed  bool
}

// Delete asks the confirmation capability, then removes the product. The one
// optimistic update in this page: on success the item leaves the in-memory
// collection without a full reload, since a delete is trivial to re-derive.
func (c *Controller) Delete(ctx context.Context, id string) (DeleteResult, error) {
	c.mu.Lock()
	var target *catalog.Product
	for i := range c.products {
		if c.products[i].ID == id {
			target = &c.products[i]
			break
		}
	}
	if target == nil {
		c.mu.Unlock()
		return DeleteResult{}, nil
	}
	product := *target
	token := c.token
	c.mu.Unlock()

	if c.caps.ConfirmDelete == nil || !c.caps.ConfirmDelete(product) {
		return DeleteResult{Declined: true}, nil
	}

	if err := c.api.DeleteProduct(ctx, token, id); err != nil {
		c.mu.Lock()
		c.alert = &view.Alert{Kind: view.AlertDanger, Message: apperr.PublicMessage(err)}
		if ae, ok := apperr.As(err); ok {
			c.diag = ae.Diag
		}
		c.mu.Unlock()
		return DeleteResult{}, err
	}

	c.mu.Lock()
	kept := c.products[:0]
	for _, p := range c.products {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	c.products = kept
	c.rebuildCategories()
	c.mu.Unlock()

	return DeleteResult{Removed: true}, nil
}

// OpenCreate resets the dialog for a new product.
func (c *Controller) OpenCreate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stopCloseTimer()
	c.form = blankForm()
	c.form.Open = true
	c.formSel = ""
}

// OpenEdit pre-fills the dialog from the in-memory record. Price shows the
// way the user would type it back: comma decimal.
func (c *Controller) OpenEdit(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, p := range c.products {
		if p.ID != id {
			continue
		}
		c.stopCloseTimer()
		c.form = view.ProductForm{
			ID:        p.ID,
			Nome:      p.Name,
			Descricao: p.Description,
			Preco:     shared.EditComma(p.Price),
			Estoque:   strconv.Itoa(p.Stock),
			Categoria: p.CategoryID,
			ImagemURL: p.ImageURL,
			Ativo:     p.Active,
			Title:     "Editar produto",
			Open:      true,
		}
		c.formSel = p.CategoryID
		return true
	}
	return false
}

// CloseDialog discards the dialog immediately (user cancelled).
func (c *Controller) CloseDialog() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stopCloseTimer()
	c.form = blankForm()
	c.formSel = ""
}

func formFromInput(in FormInput) view.ProductForm {
	title := "Novo produto"
	if strings.TrimSpace(in.ID) != "" {
		title = "Editar produto"
	}
	return view.ProductForm{
		ID:        in.ID,
		Nome:      in.Nome,
		Descricao: in.Descricao,
		Preco:     in.Preco,
		Estoque:   in.Estoque,
		Categoria: in.Categoria,
		ImagemURL: in.ImagemURL,
		Ativo:     in.Ativo,
		Title:     title,
		Open:      true,
	}
}

func firstFieldMessage(fields map[string]string) string {
	for _, key := range []string{"nome", "preco", "estoque", "_"} {
		if msg, ok := fields[key]; ok {
			return msg
		}
	}
	for _, msg := range fields {
		return msg
	}
	return "Dados do formulário inválidos."
}
