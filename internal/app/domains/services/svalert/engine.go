package svalert

import (
	"context"
	"fmt"
	"time"

	"pem/internal/app/domains/entity/etalert"
	"pem/internal/app/domains/entity/etproduct"
	"pem/internal/app/domains/services/svrecipe"
	"pem/internal/app/pkg/errorx"
	"pem/internal/app/pkg/idgen"
	"pem/internal/app/pkg/logger"
)

// DefaultRecipeLimit 单条告警的菜谱建议上限
const DefaultRecipeLimit = 5

// InventoryStore 库存协作方（只读）
// 过期检查需要两种查询语义：精确日期匹配（明日告警）与闭区间匹配（7天告警），
// 两者有意保留为独立操作，不做合并
type InventoryStore interface {
	// ListExpiringOn 查询过期日期正好为 date 的商品
	ListExpiringOn(ctx context.Context, date time.Time) ([]*etproduct.Product, error)

	// ListExpiringWithin 查询过期日期落在 [from, to] 闭区间内的商品
	ListExpiringWithin(ctx context.Context, from, to time.Time) ([]*etproduct.Product, error)
}

// Notifier 通知协作方
// 投递失败不能穿透扫描边界，由引擎就地消化
type Notifier interface {
	Notify(ctx context.Context, alert *etalert.Alert) error
}

// Engine 过期告警引擎
// 一次扫描 = 窗口计算 → 库存查询 → 告警组装 → 历史记录 → 尽力投递
type Engine struct {
	inventory   InventoryStore
	matcher     *svrecipe.Matcher
	history     *History
	notifier    Notifier
	windows     *WindowCalculator
	recipeLimit int
	log         logger.Logger
}

// NewEngine 创建告警引擎
// recipeLimit <= 0 时取默认上限
func NewEngine(
	inventory InventoryStore,
	matcher *svrecipe.Matcher,
	history *History,
	notifier Notifier,
	windows *WindowCalculator,
	recipeLimit int,
	log logger.Logger,
) *Engine {
	if recipeLimit <= 0 {
		recipeLimit = DefaultRecipeLimit
	}
	return &Engine{
		inventory:   inventory,
		matcher:     matcher,
		history:     history,
		notifier:    notifier,
		windows:     windows,
		recipeLimit: recipeLimit,
		log:         log,
	}
}

// RunScanNow 立即执行一次扫描
// 没有命中商品时返回 (nil, nil)，这不是错误；协作方失败返回包装后的错误
func (e *Engine) RunScanNow(ctx context.Context, alertType etalert.Type) (*etalert.Alert, error) {
	products, err := e.queryExpiring(ctx, alertType)
	if err != nil {
		return nil, err
	}

	if len(products) == 0 {
		e.log.Infof(ctx, "[Engine] No products found for %s alert", alertType)
		return nil, nil
	}

	alert, err := e.assemble(products, alertType)
	if err != nil {
		return nil, fmt.Errorf("assemble alert failed: %w", err)
	}

	// 尽力投递；失败只降级状态，告警仍然入库
	if err := e.notifier.Notify(ctx, alert); err != nil {
		e.log.Warnf(ctx, "[Engine] Alert delivery failed: alert_id=%d, error=%v", alert.ID, err)
		alert.Status = etalert.StatusDeliveryFailed
	}

	e.history.Append(alert)

	e.log.Infof(ctx, "[Engine] %s alert generated: alert_id=%d, products=%d, value_at_risk=%.2f, status=%s",
		alertType, alert.ID, len(alert.Products), alert.TotalValueAtRisk, alert.Status)

	return alert, nil
}

// ExpiringWithin 查询 n 天内过期的商品（HTTP 查询接口复用）
func (e *Engine) ExpiringWithin(ctx context.Context, days int) ([]*etproduct.Product, error) {
	window, err := e.windows.WithinDaysInclusive(days)
	if err != nil {
		return nil, err
	}

	products, err := e.inventory.ListExpiringWithin(ctx, window.From, window.To)
	if err != nil {
		return nil, fmt.Errorf("inventory query failed: %w", err)
	}
	return products, nil
}

// Recent 查询最近的告警（newest-first）
func (e *Engine) Recent(limit int) []*etalert.Alert {
	return e.history.Recent(limit)
}

// Stats 查询滚动统计
func (e *Engine) Stats() Stats {
	return e.history.Stats()
}

// StatsSince 查询任意滚动窗口的统计
func (e *Engine) StatsSince(window time.Duration) WindowStats {
	return e.history.StatsSince(window)
}

// queryExpiring 按告警类型选择查询语义
func (e *Engine) queryExpiring(ctx context.Context, alertType etalert.Type) ([]*etproduct.Product, error) {
	switch alertType {
	case etalert.TypeTomorrow:
		date, err := e.windows.ExactDayOffset(1)
		if err != nil {
			return nil, err
		}
		products, err := e.inventory.ListExpiringOn(ctx, date)
		if err != nil {
			return nil, fmt.Errorf("inventory query failed: %w", err)
		}
		return products, nil

	case etalert.TypeSevenDay:
		window, err := e.windows.WithinDaysInclusive(7)
		if err != nil {
			return nil, err
		}
		products, err := e.inventory.ListExpiringWithin(ctx, window.From, window.To)
		if err != nil {
			return nil, fmt.Errorf("inventory query failed: %w", err)
		}
		return products, nil

	default:
		return nil, fmt.Errorf("unknown alert type %q: %w", alertType, errorx.ErrInvalidArgument)
	}
}

// assemble 组装告警（商品快照 + 去重菜谱 + 风险总价值）
// 空输入违反前置条件，调用方应当跳过而不是告警
func (e *Engine) assemble(products []*etproduct.Product, alertType etalert.Type) (*etalert.Alert, error) {
	if len(products) == 0 {
		return nil, errorx.ErrEmptyInput
	}

	today := e.windows.Today()

	snapshots := make([]etalert.ProductSnapshot, 0, len(products))
	total := 0.0
	for _, p := range products {
		snapshot := etalert.SnapshotOf(p, today)
		snapshots = append(snapshots, snapshot)
		total += snapshot.Value
	}

	return &etalert.Alert{
		ID:               idgen.GenerateID(),
		Timestamp:        e.windows.Now(),
		Type:             alertType,
		Products:         snapshots,
		TotalValueAtRisk: etproduct.RoundMoney(total),
		Recipes:          e.recipeSuggestions(products),
		Status:           etalert.StatusSent,
	}, nil
}

// recipeSuggestions 跨商品合并菜谱建议
// 每个商品名只查一次；按菜谱名去重，先出现者优先，截断到上限
func (e *Engine) recipeSuggestions(products []*etproduct.Product) []etalert.RecipeSuggestion {
	seenProducts := make(map[string]struct{}, len(products))
	seenRecipes := make(map[string]struct{})
	merged := make([]etalert.RecipeSuggestion, 0, e.recipeLimit)

	for _, p := range products {
		if _, dup := seenProducts[p.Name]; dup {
			continue
		}
		seenProducts[p.Name] = struct{}{}

		for _, recipe := range e.matcher.RecipesFor(p.Name) {
			if _, dup := seenRecipes[recipe.Name]; dup {
				continue
			}
			seenRecipes[recipe.Name] = struct{}{}

			recipe.ForProduct = p.Name
			merged = append(merged, recipe)
		}
	}

	if len(merged) > e.recipeLimit {
		merged = merged[:e.recipeLimit]
	}
	return merged
}
