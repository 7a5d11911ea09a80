package handlers

import (
	"errors"
	"log"
	"net/http"
	"shipment-address-service/internal/api/dto"
	"shipment-address-service/internal/domain"
	"shipment-address-service/internal/ports"
	"shipment-address-service/internal/services"

	"github.com/go-chi/chi/v5"
)

// ShipmentHandler exposes read-only shipment endpoints and the address parser.
type ShipmentHandler struct {
	Repo ports.ShipmentRepository
}

func (h *ShipmentHandler) List(w http.ResponseWriter, r *http.Request) {
	shipments, err := h.Repo.ListShipments(r.Context())
	if err != nil {
		log.Printf("list shipments failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListShipmentsResponse{
		Shipments: make([]dto.ShipmentResponse, 0, len(shipments)),
	}
	for _, s := range shipments {
		res.Shipments = append(res.Shipments, toShipmentResponse(s))
	}

	writeJSON(w, r, http.StatusOK, res)
}

func (h *ShipmentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "shipmentID")

	shipment, err := h.Repo.GetShipment(r.Context(), id)
	if errors.Is(err, ports.ErrShipmentNotFound) {
		writeError(w, r, http.StatusNotFound, "shipment not found")
		return
	}
	if err != nil {
		log.Printf("get shipment failed: shipment_id=%s err=%v", id, err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, toShipmentResponse(shipment))
}

// Parsed runs both address parser queries on one shipment.
// Shipments with an absent address or an empty receiver street1 make the
// parser panic; the recover middleware turns that into a 500.
func (h *ShipmentHandler) Parsed(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "shipmentID")

	parsed, err := services.ParseShipment(r.Context(), h.Repo, id)
	if errors.Is(err, ports.ErrShipmentNotFound) {
		writeError(w, r, http.StatusNotFound, "shipment not found")
		return
	}
	if err != nil {
		log.Printf("parse shipment failed: shipment_id=%s err=%v", id, err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ParsedAddressesResponse{
		ShipmentID:          parsed.ShipmentID,
		ReceiverStreet1Tail: parsed.ReceiverStreet1Tail,
		SenderStreet2Upper:  parsed.SenderStreet2Upper,
	})
}

func toShipmentResponse(s domain.Shipment) dto.ShipmentResponse {
	return dto.ShipmentResponse{
		ShipmentID:        s.ShipmentID(),
		ShipmentReference: s.ShipmentReference(),
		Sender:            toAddressResponse(s.SenderAddress()),
		Receiver:          toAddressResponse(s.ReceiverAddress()),
	}
}

func toAddressResponse(a domain.Address) *dto.AddressResponse {
	if !domain.HasAddress(a) {
		return nil
	}
	return &dto.AddressResponse{Street1: a.Street1(), Street2: a.Street2()}
}
