package lunar

import "testing"

func TestChinese_Label(t *testing.T) {
	c := NewChinese()

	tests := []struct {
		name             string
		year, month, day int
		want             string
	}{
		// Lunar new year 2024 fell on February 10.
		{name: "first day of first month", year: 2024, month: 2, day: 10, want: "正月"},
		{name: "second day", year: 2024, month: 2, day: 11, want: "初二"},
		{name: "fifteenth day", year: 2024, month: 2, day: 24, want: "十五"},
		{name: "last day of twelfth month", year: 2024, month: 2, day: 9, want: "三十"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.Label(tt.year, tt.month, tt.day); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestChinese_Festivals(t *testing.T) {
	c := NewChinese(WithFestivals(true))

	tests := []struct {
		name             string
		year, month, day int
		want             string
	}{
		{name: "spring festival", year: 2024, month: 2, day: 10, want: "春节"},
		{name: "lantern festival", year: 2024, month: 2, day: 24, want: "元宵"},
		{name: "new year's eve", year: 2024, month: 2, day: 9, want: "除夕"},
		{name: "mid-autumn", year: 2024, month: 9, day: 17, want: "中秋"},
		{name: "ordinary day", year: 2024, month: 2, day: 11, want: "初二"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.Label(tt.year, tt.month, tt.day); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

type countingConverter struct {
	calls int
}

func (c *countingConverter) Label(year, month, day int) string {
	c.calls++
	return "x"
}

func TestCache(t *testing.T) {
	inner := &countingConverter{}
	cache := NewCache(inner)

	for range 3 {
		if got := cache.Label(2024, 2, 14); got != "x" {
			t.Fatalf("got %q, want %q", got, "x")
		}
	}
	cache.Label(2024, 2, 15)

	if inner.calls != 2 {
		t.Errorf("expected 2 underlying calls, got %d", inner.calls)
	}
	if cache.Len() != 2 {
		t.Errorf("expected 2 cached dates, got %d", cache.Len())
	}
}
