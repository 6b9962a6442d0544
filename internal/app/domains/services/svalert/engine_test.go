package svalert

import (
	"context"
	"errors"
	"testing"
	"time"

	"pem/internal/app/domains/entity/etalert"
	"pem/internal/app/domains/entity/etproduct"
	"pem/internal/app/domains/services/svrecipe"
)

// nopLogger 测试用空日志
type nopLogger struct{}

func (nopLogger) Debugf(ctx context.Context, format string, args ...interface{}) {}
func (nopLogger) Infof(ctx context.Context, format string, args ...interface{})  {}
func (nopLogger) Warnf(ctx context.Context, format string, args ...interface{})  {}
func (nopLogger) Errorf(ctx context.Context, format string, args ...interface{}) {}
func (nopLogger) Sync() error                                                    { return nil }

// fakeInventory 内存库存，按日历日过滤
type fakeInventory struct {
	products []*etproduct.Product
	err      error
}

func (f *fakeInventory) ListExpiringOn(ctx context.Context, date time.Time) ([]*etproduct.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	var hits []*etproduct.Product
	for _, p := range f.products {
		if p.ExpirationDate.Equal(date) {
			hits = append(hits, p)
		}
	}
	return hits, nil
}

func (f *fakeInventory) ListExpiringWithin(ctx context.Context, from, to time.Time) ([]*etproduct.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	var hits []*etproduct.Product
	for _, p := range f.products {
		if !p.ExpirationDate.Before(from) && !p.ExpirationDate.After(to) {
			hits = append(hits, p)
		}
	}
	return hits, nil
}

// fakeNotifier 记录投递的告警，可注入失败
type fakeNotifier struct {
	delivered []*etalert.Alert
	err       error
}

func (f *fakeNotifier) Notify(ctx context.Context, alert *etalert.Alert) error {
	if f.err != nil {
		return f.err
	}
	f.delivered = append(f.delivered, alert)
	return nil
}

func mustProduct(t *testing.T, id int64, name, category string, expiration time.Time, quantity int, price float64) *etproduct.Product {
	t.Helper()
	p, err := etproduct.NewProduct(id, name, category, expiration, quantity, price)
	if err != nil {
		t.Fatalf("NewProduct(%s) error: %v", name, err)
	}
	return p
}

func newTestEngine(inventory *fakeInventory, notifier *fakeNotifier, now time.Time) (*Engine, *History) {
	history := NewHistory(100, fixedClock(now))
	matcher := svrecipe.NewMatcher(svrecipe.NewCatalog())
	windows := NewWindowCalculator(fixedClock(now))
	engine := NewEngine(inventory, matcher, history, notifier, windows, DefaultRecipeLimit, nopLogger{})
	return engine, history
}

func TestRunScanNowTomorrowAlert(t *testing.T) {
	now := time.Date(2024, 3, 15, 18, 0, 0, 0, time.UTC)
	tomorrow := time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC)
	farFuture := now.AddDate(0, 0, 400)

	inventory := &fakeInventory{products: []*etproduct.Product{
		mustProduct(t, 1, "Milk", "Dairy", tomorrow, 50, 3.99),
		mustProduct(t, 2, "Rice", "Pantry", farFuture, 50, 3.99),
	}}
	notifier := &fakeNotifier{}
	engine, history := newTestEngine(inventory, notifier, now)

	alert, err := engine.RunScanNow(context.Background(), etalert.TypeTomorrow)
	if err != nil {
		t.Fatalf("RunScanNow error: %v", err)
	}
	if alert == nil {
		t.Fatal("expected alert, got nil")
	}

	// 只有 Milk 命中，Rice 不在窗口内
	if len(alert.Products) != 1 {
		t.Fatalf("alert has %d products, want 1", len(alert.Products))
	}
	if alert.Products[0].Name != "Milk" {
		t.Errorf("alert product = %s, want Milk", alert.Products[0].Name)
	}

	// 50 × 3.99 = 199.50，精确到分
	if alert.TotalValueAtRisk != 199.50 {
		t.Errorf("TotalValueAtRisk = %v, want 199.50", alert.TotalValueAtRisk)
	}
	if alert.Products[0].Urgency != etalert.UrgencyTomorrow {
		t.Errorf("urgency = %s, want TOMORROW", alert.Products[0].Urgency)
	}

	if len(alert.Recipes) == 0 {
		t.Fatal("alert has no recipe suggestions")
	}
	for _, recipe := range alert.Recipes {
		if recipe.ForProduct != "Milk" {
			t.Errorf("recipe %s ForProduct = %s, want Milk", recipe.Name, recipe.ForProduct)
		}
	}

	if alert.Status != etalert.StatusSent {
		t.Errorf("status = %s, want SENT", alert.Status)
	}
	if len(notifier.delivered) != 1 {
		t.Errorf("notifier delivered %d alerts, want 1", len(notifier.delivered))
	}
	if history.Len() != 1 {
		t.Errorf("history has %d alerts, want 1", history.Len())
	}
}

func TestRunScanNowSevenDayAlert(t *testing.T) {
	now := time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC)

	inventory := &fakeInventory{products: []*etproduct.Product{
		mustProduct(t, 1, "Yogurt", "Dairy", now.AddDate(0, 0, 3), 10, 1.25),
		mustProduct(t, 2, "Chicken Breast", "Meat", now.AddDate(0, 0, 7), 4, 8.00),
		mustProduct(t, 3, "Rice", "Pantry", now.AddDate(0, 0, 8), 50, 3.99),
	}}
	engine, _ := newTestEngine(inventory, &fakeNotifier{}, now)

	alert, err := engine.RunScanNow(context.Background(), etalert.TypeSevenDay)
	if err != nil {
		t.Fatalf("RunScanNow error: %v", err)
	}
	if alert == nil {
		t.Fatal("expected alert, got nil")
	}

	// 第7天在窗口内，第8天不在
	if len(alert.Products) != 2 {
		t.Fatalf("alert has %d products, want 2", len(alert.Products))
	}
	// 10×1.25 + 4×8.00 = 44.50
	if alert.TotalValueAtRisk != 44.50 {
		t.Errorf("TotalValueAtRisk = %v, want 44.50", alert.TotalValueAtRisk)
	}
}

func TestRunScanNowEmptyWindow(t *testing.T) {
	now := time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC)
	inventory := &fakeInventory{}
	notifier := &fakeNotifier{}
	engine, history := newTestEngine(inventory, notifier, now)

	alert, err := engine.RunScanNow(context.Background(), etalert.TypeSevenDay)
	if err != nil {
		t.Fatalf("RunScanNow error: %v", err)
	}
	if alert != nil {
		t.Errorf("expected nil alert for empty window, got %+v", alert)
	}
	if len(notifier.delivered) != 0 {
		t.Error("nothing should be delivered for empty window")
	}
	if history.Len() != 0 {
		t.Error("nothing should be recorded for empty window")
	}
}

func TestRunScanNowDeliveryFailure(t *testing.T) {
	now := time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC)
	inventory := &fakeInventory{products: []*etproduct.Product{
		mustProduct(t, 1, "Milk", "Dairy", now.AddDate(0, 0, 1), 2, 3.50),
	}}
	notifier := &fakeNotifier{err: errors.New("smtp connection refused")}
	engine, history := newTestEngine(inventory, notifier, now)

	alert, err := engine.RunScanNow(context.Background(), etalert.TypeTomorrow)
	if err != nil {
		t.Fatalf("RunScanNow error: %v", err)
	}
	if alert == nil {
		t.Fatal("expected alert despite delivery failure")
	}

	// 投递失败只降级状态，告警仍写入历史
	if alert.Status != etalert.StatusDeliveryFailed {
		t.Errorf("status = %s, want DELIVERY_FAILED", alert.Status)
	}
	if history.Len() != 1 {
		t.Errorf("history has %d alerts, want 1", history.Len())
	}
}

func TestRunScanNowInventoryFailure(t *testing.T) {
	now := time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC)
	inventory := &fakeInventory{err: errors.New("connection reset")}
	engine, history := newTestEngine(inventory, &fakeNotifier{}, now)

	_, err := engine.RunScanNow(context.Background(), etalert.TypeSevenDay)
	if err == nil {
		t.Fatal("expected error from inventory failure")
	}
	if history.Len() != 0 {
		t.Error("failed scan must not leave partial history")
	}
}

func TestRunScanNowUnknownType(t *testing.T) {
	now := time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC)
	engine, _ := newTestEngine(&fakeInventory{}, &fakeNotifier{}, now)

	_, err := engine.RunScanNow(context.Background(), etalert.Type("MONTHLY"))
	if err == nil {
		t.Fatal("expected error for unknown alert type")
	}
}

func TestRecipeSuggestionsDeduplicated(t *testing.T) {
	now := time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC)
	tomorrow := now.AddDate(0, 0, 1)

	// 两个同名商品 + 多个不同商品：同名只查一次，跨商品按菜谱名去重，总数不超过上限
	inventory := &fakeInventory{products: []*etproduct.Product{
		mustProduct(t, 1, "Milk", "Dairy", tomorrow, 1, 3.99),
		mustProduct(t, 2, "Milk", "Dairy", tomorrow, 2, 3.99),
		mustProduct(t, 3, "Cheese", "Dairy", tomorrow, 1, 5.49),
		mustProduct(t, 4, "Chicken Breast", "Meat", tomorrow, 1, 8.00),
	}}
	engine, _ := newTestEngine(inventory, &fakeNotifier{}, now)

	alert, err := engine.RunScanNow(context.Background(), etalert.TypeTomorrow)
	if err != nil {
		t.Fatalf("RunScanNow error: %v", err)
	}
	if alert == nil {
		t.Fatal("expected alert, got nil")
	}

	if len(alert.Recipes) > DefaultRecipeLimit {
		t.Errorf("alert has %d recipes, want at most %d", len(alert.Recipes), DefaultRecipeLimit)
	}

	seen := make(map[string]struct{})
	for _, recipe := range alert.Recipes {
		if _, dup := seen[recipe.Name]; dup {
			t.Errorf("duplicate recipe name: %s", recipe.Name)
		}
		seen[recipe.Name] = struct{}{}
	}
}

func TestExpiringWithin(t *testing.T) {
	now := time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC)
	inventory := &fakeInventory{products: []*etproduct.Product{
		mustProduct(t, 1, "Milk", "Dairy", now.AddDate(0, 0, 2), 1, 3.99),
		mustProduct(t, 2, "Rice", "Pantry", now.AddDate(0, 0, 30), 1, 3.99),
	}}
	engine, _ := newTestEngine(inventory, &fakeNotifier{}, now)

	products, err := engine.ExpiringWithin(context.Background(), 7)
	if err != nil {
		t.Fatalf("ExpiringWithin error: %v", err)
	}
	if len(products) != 1 || products[0].Name != "Milk" {
		t.Errorf("ExpiringWithin(7) = %d products, want just Milk", len(products))
	}

	if _, err := engine.ExpiringWithin(context.Background(), -1); err == nil {
		t.Error("expected error for negative days")
	}
}
