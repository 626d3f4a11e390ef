package response

import (
	"encoding/json"
	"testing"
	"time"

	"luthierflow/internal/domain/entities"
)

func TestFromOrder(t *testing.T) {
	o := entities.NewServiceOrder(time.Now())
	o.Customer.Name = "Ana"
	o.LuthierID = "1"
	o.AddService("Troca de Cordas", 50)
	o.AddService("Elétrica", 0.1)
	o.SetDeposit(20, time.Now())

	res := FromOrder(o, entities.DefaultSettings())
	if res.Totals.TotalPrice != 50.1 || res.Totals.TotalPaid != 20 || res.Totals.Balance != 30.1 {
		t.Fatalf("unexpected totals: %+v", res.Totals)
	}
	if res.Deposit != 20 {
		t.Fatalf("unexpected deposit: %v", res.Deposit)
	}
	if res.Luthier == nil || res.Luthier.Name != "Luthier Principal" {
		t.Fatalf("expected resolved luthier, got %+v", res.Luthier)
	}
}

func TestFromOrder_UnassignedLuthier(t *testing.T) {
	o := entities.ServiceOrder{ID: "os-1", LuthierID: "removed"}
	res := FromOrder(o, entities.DefaultSettings())

	b, err := json.Marshal(res)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var body map[string]any
	_ = json.Unmarshal(b, &body)
	if v, ok := body["luthier"]; !ok || v != nil {
		t.Fatalf("expected null luthier, got %v", body["luthier"])
	}
	if services, ok := body["services"].([]any); !ok || len(services) != 0 {
		t.Fatalf("expected empty services array, got %v", body["services"])
	}
}

func TestFromBoard(t *testing.T) {
	groups := entities.GroupByStatus([]entities.ServiceOrder{
		{ID: "a", Status: entities.OrderStatusPronto},
		{ID: "b", Status: entities.OrderStatusPronto},
	})
	res := FromBoard(groups, true, entities.DefaultSettings())
	if !res.FromCache || len(res.Columns) != 4 {
		t.Fatalf("unexpected board: %+v", res)
	}
	if res.Columns[0].Status != "PENDENTE" || res.Columns[2].Count != 2 || res.Columns[3].Orders == nil {
		t.Fatalf("unexpected columns: %+v", res.Columns)
	}
}

func TestCreatedOrderResponse_JSON(t *testing.T) {
	b, _ := json.Marshal(CreatedOrderResponse{OrderResponse: OrderResponse{ID: "os-1"}, Synced: false})
	var body map[string]any
	_ = json.Unmarshal(b, &body)
	if body["id"] != "os-1" || body["synced"] != false {
		t.Fatalf("unexpected body: %s", string(b))
	}
}
