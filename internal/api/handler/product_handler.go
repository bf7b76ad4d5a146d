package handler

import (
	"net/http"
	"strconv"
	"wings_inventory/internal/app/service"
	"wings_inventory/internal/common"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

type ProductHandler struct {
	productService *service.ProductService
	log            logrus.FieldLogger
}

func NewProductHandler(ps *service.ProductService, log logrus.FieldLogger) *ProductHandler {
	return &ProductHandler{productService: ps, log: log}
}

func (h *ProductHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.listProducts)
	r.Post("/", h.createProduct)
	r.Get("/{productID}", h.getProduct)
	r.Put("/{productID}", h.updateProduct)
	r.Delete("/{productID}", h.deleteProduct)
}

func (h *ProductHandler) listProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.productService.ListProducts(r.Context())
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, products)
}

func (h *ProductHandler) createProduct(w http.ResponseWriter, r *http.Request) {
	var req service.ProductRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	product, err := h.productService.CreateProduct(r.Context(), req)
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}
	h.log.WithField("product_id", product.ID).Info("product created")
	common.RespondWithMessage(w, "Product added successfully")
}

func (h *ProductHandler) getProduct(w http.ResponseWriter, r *http.Request) {
	id, err := productIDParam(r)
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	product, err := h.productService.GetProduct(r.Context(), id)
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, product)
}

func (h *ProductHandler) updateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := productIDParam(r)
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}
	var req service.ProductRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if _, err := h.productService.UpdateProduct(r.Context(), id, req); err != nil {
		respondError(h.log, w, r, err)
		return
	}
	common.RespondWithMessage(w, "Product updated successfully")
}

func (h *ProductHandler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := productIDParam(r)
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	if err := h.productService.DeleteProduct(r.Context(), id); err != nil {
		respondError(h.log, w, r, err)
		return
	}
	common.RespondWithMessage(w, "Product deleted successfully")
}

func productIDParam(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "productID"), 10, 64)
	if err != nil || id <= 0 {
		return 0, common.Validationf("product id must be a positive integer")
	}
	return id, nil
}
