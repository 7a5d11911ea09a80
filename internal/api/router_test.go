package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"shipment-address-service/internal/api/dto"
	"shipment-address-service/internal/domain"
	"shipment-address-service/internal/mocks"
	"shipment-address-service/internal/ports"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testShipment() *domain.ShipmentRecord {
	s := domain.NewShipmentRecord("SHP-1", "REF-1")
	s.SetReceiverAddress(domain.NewStreetAddress("Street 1 test", "Suite 200"))
	s.SetSenderAddress(domain.NewStreetAddress("1 Depot Rd", "Street 2 test"))
	return s
}

func serve(t *testing.T, repo ports.ShipmentRepository, method, target string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	NewRouter(repo).ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&v))
	return v
}

func TestHealth(t *testing.T) {
	rec := serve(t, new(mocks.MockShipmentRepository), http.MethodGet, "/health")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", decode[map[string]string](t, rec)["status"])
	assert.NotEmpty(t, rec.Header().Get(requestIDHeader))
}

func TestRequestIDIsPropagated(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(requestIDHeader, "req-123")
	rec := httptest.NewRecorder()

	NewRouter(new(mocks.MockShipmentRepository)).ServeHTTP(rec, req)

	assert.Equal(t, "req-123", rec.Header().Get(requestIDHeader))
}

func TestListShipments(t *testing.T) {
	noAddresses := domain.NewShipmentRecord("SHP-2", "REF-2")

	repo := new(mocks.MockShipmentRepository)
	repo.On("ListShipments", mock.Anything).
		Return([]domain.Shipment{testShipment(), noAddresses}, nil)

	rec := serve(t, repo, http.MethodGet, "/shipments")
	require.Equal(t, http.StatusOK, rec.Code)

	res := decode[dto.ListShipmentsResponse](t, rec)
	require.Len(t, res.Shipments, 2)
	assert.Equal(t, "SHP-1", res.Shipments[0].ShipmentID)
	require.NotNil(t, res.Shipments[0].Receiver)
	assert.Equal(t, "Street 1 test", res.Shipments[0].Receiver.Street1)
	assert.Nil(t, res.Shipments[1].Sender)
	assert.Nil(t, res.Shipments[1].Receiver)
	repo.AssertExpectations(t)
}

func TestListShipmentsRepoError(t *testing.T) {
	repo := new(mocks.MockShipmentRepository)
	repo.On("ListShipments", mock.Anything).Return(nil, errors.New("db down"))

	rec := serve(t, repo, http.MethodGet, "/shipments")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "internal server error", decode[map[string]string](t, rec)["error"])
}

func TestGetShipment(t *testing.T) {
	repo := new(mocks.MockShipmentRepository)
	repo.On("GetShipment", mock.Anything, "SHP-1").Return(testShipment(), nil)
	repo.On("GetShipment", mock.Anything, "nope").Return(nil, ports.ErrShipmentNotFound)

	rec := serve(t, repo, http.MethodGet, "/shipments/SHP-1")
	require.Equal(t, http.StatusOK, rec.Code)
	res := decode[dto.ShipmentResponse](t, rec)
	assert.Equal(t, "REF-1", res.ShipmentReference)
	require.NotNil(t, res.Sender)
	assert.Equal(t, "Street 2 test", res.Sender.Street2)

	rec = serve(t, repo, http.MethodGet, "/shipments/nope")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestParsedShipment(t *testing.T) {
	repo := new(mocks.MockShipmentRepository)
	repo.On("GetShipment", mock.Anything, "SHP-1").Return(testShipment(), nil)

	rec := serve(t, repo, http.MethodGet, "/shipments/SHP-1/parsed")
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, dto.ParsedAddressesResponse{
		ShipmentID:          "SHP-1",
		ReceiverStreet1Tail: "treet 1 test",
		SenderStreet2Upper:  "STREET 2 TEST",
	}, decode[dto.ParsedAddressesResponse](t, rec))
}

func TestParsedShipmentNotFound(t *testing.T) {
	repo := new(mocks.MockShipmentRepository)
	repo.On("GetShipment", mock.Anything, "nope").Return(nil, ports.ErrShipmentNotFound)

	rec := serve(t, repo, http.MethodGet, "/shipments/nope/parsed")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestParsedShipmentParserPanicBecomes500(t *testing.T) {
	emptyStreet := domain.NewShipmentRecord("SHP-3", "REF-3")
	emptyStreet.SetReceiverAddress(domain.NewStreetAddress("", ""))
	emptyStreet.SetSenderAddress(domain.NewStreetAddress("", ""))

	noSender := domain.NewShipmentRecord("SHP-4", "REF-4")
	noSender.SetReceiverAddress(domain.NewStreetAddress("Street 1 test", ""))

	repo := new(mocks.MockShipmentRepository)
	repo.On("GetShipment", mock.Anything, "SHP-3").Return(emptyStreet, nil)
	repo.On("GetShipment", mock.Anything, "SHP-4").Return(noSender, nil)

	for _, id := range []string{"SHP-3", "SHP-4"} {
		rec := serve(t, repo, http.MethodGet, "/shipments/"+id+"/parsed")
		assert.Equal(t, http.StatusInternalServerError, rec.Code, id)
		assert.Equal(t, "internal server error", decode[map[string]string](t, rec)["error"], id)
	}
}

func TestMethodNotAllowed(t *testing.T) {
	rec := serve(t, new(mocks.MockShipmentRepository), http.MethodPost, "/shipments")

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Contains(t, rec.Header().Get("Allow"), http.MethodGet)
}

func TestUnknownRoute(t *testing.T) {
	rec := serve(t, new(mocks.MockShipmentRepository), http.MethodGet, "/packages")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "not found", decode[map[string]string](t, rec)["error"])
}
