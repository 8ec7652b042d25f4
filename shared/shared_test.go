package shared_test

import (
	"testing"
	"zentravel/shared"
	"zentravel/shared/dto"
)

func TestBuildCacheKey(t *testing.T) {
	if got := shared.BuildCacheKey("weather:leg", "prague"); got != "weather:leg:prague" {
		t.Errorf("BuildCacheKey = %q", got)
	}

	if got := shared.BuildCacheKey("exchange:rates"); got != "exchange:rates" {
		t.Errorf("BuildCacheKey without parts = %q", got)
	}

	if got := shared.BuildCacheKey("schedule:get", "2026-02-15"); got != "schedule:get:2026-02-15" {
		t.Errorf("BuildCacheKey = %q", got)
	}
}

func TestFilterByID(t *testing.T) {
	group := shared.FilterByID("flight-1", "id", "bookings")

	if len(group.Filters) != 1 {
		t.Fatalf("expected one filter, got %d", len(group.Filters))
	}

	filter, ok := group.Filters[0].(dto.Filter)
	if !ok {
		t.Fatalf("unexpected filter type %T", group.Filters[0])
	}

	if filter.Field != "id" || filter.Value != "flight-1" || filter.Operator != dto.FilterOperatorEq {
		t.Errorf("unexpected filter %+v", filter)
	}

	if filter.Table != "bookings" {
		t.Errorf("unexpected table %q", filter.Table)
	}
}
