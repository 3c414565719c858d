package belboard

import (
	"bytes"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
)

const defaultChartHeight = "360px"

var sharedChartCache = NewChartCache(5 * time.Minute)

// ChartPoint is an individual plotted value, optionally labeled.
type ChartPoint struct {
	Label string
	Value float64
}

// ChartSeries is the set of values plotted for one legend entry.
type ChartSeries struct {
	Name   string
	Points []ChartPoint
}

// TierDistributionSeries counts accounts per tier for the distribution
// pie.
func TierDistributionSeries(accounts []Account) ChartSeries {
	counts := make(map[Tier]int)
	for _, a := range accounts {
		counts[a.Tier]++
	}
	series := ChartSeries{Name: "Accounts"}
	for _, tier := range Tiers() {
		series.Points = append(series.Points, ChartPoint{
			Label: string(tier),
			Value: float64(counts[tier]),
		})
	}
	return series
}

// TierPerformanceSeries plots clicks, orders and revenue per tier for the
// grouped performance bar chart.
func TierPerformanceSeries(rows []TierPerformance) []ChartSeries {
	clicks := ChartSeries{Name: "Clicks"}
	orders := ChartSeries{Name: "Orders"}
	revenue := ChartSeries{Name: "Revenue"}
	for _, row := range rows {
		label := string(row.Tier)
		clicks.Points = append(clicks.Points, ChartPoint{Label: label, Value: float64(row.Clicks)})
		orders.Points = append(orders.Points, ChartPoint{Label: label, Value: float64(row.Orders)})
		revenue.Points = append(revenue.Points, ChartPoint{Label: label, Value: row.Revenue})
	}
	return []ChartSeries{clicks, orders, revenue}
}

// TrendSeries plots click and order totals per label. Click counts are
// scaled to thousands so both lines share one axis.
func TrendSeries(labels []string, clicks, orders []int) []ChartSeries {
	clickSeries := ChartSeries{Name: "Clicks (k)"}
	orderSeries := ChartSeries{Name: "Orders"}
	for i, label := range labels {
		if i < len(clicks) {
			clickSeries.Points = append(clickSeries.Points, ChartPoint{
				Label: label,
				Value: float64(clicks[i]) / 1000,
			})
		}
		if i < len(orders) {
			orderSeries.Points = append(orderSeries.Points, ChartPoint{
				Label: label,
				Value: float64(orders[i]),
			})
		}
	}
	return []ChartSeries{clickSeries, orderSeries}
}

// EChartsRenderer turns chart series into self-contained go-echarts
// markup. Renders are memoized because the dashboard re-renders its
// charts on every tier or filter change.
type EChartsRenderer struct {
	cache RenderCache
	theme string
}

// EChartsRendererOption customizes renderer behavior.
type EChartsRendererOption func(*EChartsRenderer)

// WithChartCache injects a render cache.
func WithChartCache(cache RenderCache) EChartsRendererOption {
	return func(r *EChartsRenderer) {
		r.cache = cache
	}
}

// WithChartTheme sets the chart theme (defaults to Westeros).
func WithChartTheme(theme string) EChartsRendererOption {
	return func(r *EChartsRenderer) {
		r.theme = theme
	}
}

// NewEChartsRenderer builds a renderer with the shared cache.
func NewEChartsRenderer(options ...EChartsRendererOption) *EChartsRenderer {
	r := &EChartsRenderer{
		cache: sharedChartCache,
		theme: types.ThemeWesteros,
	}
	for _, opt := range options {
		opt(r)
	}
	return r
}

// RenderBar renders a grouped bar chart over the series' labels.
func (r *EChartsRenderer) RenderBar(title string, series []ChartSeries) (string, error) {
	return r.cached("bar", title, series, func() (string, error) {
		bar := charts.NewBar()
		bar.SetGlobalOptions(r.globalChartOptions(title)...)
		bar.SetXAxis(axisLabels(series))
		for _, s := range series {
			bar.AddSeries(s.Name, toBarData(s.Points))
		}
		return renderChart(bar)
	})
}

// RenderLine renders a smoothed line chart over the series' labels.
func (r *EChartsRenderer) RenderLine(title string, series []ChartSeries) (string, error) {
	return r.cached("line", title, series, func() (string, error) {
		line := charts.NewLine()
		line.SetGlobalOptions(r.globalChartOptions(title)...)
		line.SetXAxis(axisLabels(series))
		for _, s := range series {
			line.AddSeries(s.Name, toLineData(s.Points))
		}
		line.SetSeriesOptions(charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true)}))
		return renderChart(line)
	})
}

// RenderPie renders a single-series pie chart.
func (r *EChartsRenderer) RenderPie(title string, series ChartSeries) (string, error) {
	return r.cached("pie", title, []ChartSeries{series}, func() (string, error) {
		pie := charts.NewPie()
		pie.SetGlobalOptions(r.globalChartOptions(title)...)
		pie.AddSeries(series.Name, toPieData(series.Points))
		return renderChart(pie)
	})
}

func (r *EChartsRenderer) cached(chartType, title string, series []ChartSeries, render func() (string, error)) (string, error) {
	if r.cache == nil {
		return render()
	}
	key := fmt.Sprintf("%s:%s:%s", chartType, title, seriesHash(series))
	return r.cache.GetOrRender(key, render)
}

func (r *EChartsRenderer) globalChartOptions(title string) []charts.GlobalOpts {
	return []charts.GlobalOpts{
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithInitializationOpts(opts.Initialization{
			Theme:  r.theme,
			Width:  "100%",
			Height: defaultChartHeight,
		}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	}
}

func renderChart(renderable interface{ Render(io.Writer) error }) (string, error) {
	var buf bytes.Buffer
	if err := renderable.Render(&buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func axisLabels(series []ChartSeries) []string {
	var candidate []string
	max := 0
	for _, s := range series {
		if len(s.Points) > max {
			max = len(s.Points)
			candidate = make([]string, len(s.Points))
			for i, point := range s.Points {
				if point.Label != "" {
					candidate[i] = point.Label
				} else {
					candidate[i] = fmt.Sprintf("Item %d", i+1)
				}
			}
		}
	}
	return candidate
}

func toBarData(points []ChartPoint) []opts.BarData {
	data := make([]opts.BarData, len(points))
	for i, point := range points {
		data[i] = opts.BarData{Name: point.Label, Value: point.Value}
	}
	return data
}

func toLineData(points []ChartPoint) []opts.LineData {
	data := make([]opts.LineData, len(points))
	for i, point := range points {
		data[i] = opts.LineData{Name: point.Label, Value: point.Value}
	}
	return data
}

func toPieData(points []ChartPoint) []opts.PieData {
	data := make([]opts.PieData, len(points))
	for i, point := range points {
		name := point.Label
		if name == "" {
			name = fmt.Sprintf("Slice %d", i+1)
		}
		data[i] = opts.PieData{Name: name, Value: point.Value}
	}
	return data
}

// RenderCache memoizes rendered chart markup so repeated renders are
// cheap.
type RenderCache interface {
	GetOrRender(key string, render func() (string, error)) (string, error)
}

// ChartCache is an in-memory TTL cache for rendered charts.
type ChartCache struct {
	ttl     time.Duration
	mu      sync.RWMutex
	entries map[string]cachedChart
}

type cachedChart struct {
	html    string
	expires time.Time
}

// NewChartCache builds a cache with the provided TTL.
func NewChartCache(ttl time.Duration) *ChartCache {
	return &ChartCache{
		ttl:     ttl,
		entries: make(map[string]cachedChart),
	}
}

// GetOrRender returns a cached entry or renders and stores a new one.
func (c *ChartCache) GetOrRender(key string, render func() (string, error)) (string, error) {
	if html, ok := c.get(key); ok {
		return html, nil
	}
	html, err := render()
	if err != nil {
		return "", err
	}
	c.set(key, html)
	return html, nil
}

func (c *ChartCache) get(key string) (string, bool) {
	if c == nil || c.ttl <= 0 {
		return "", false
	}
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok || time.Now().After(entry.expires) {
		if ok {
			c.mu.Lock()
			delete(c.entries, key)
			c.mu.Unlock()
		}
		return "", false
	}
	return entry.html, true
}

func (c *ChartCache) set(key, html string) {
	if c == nil || c.ttl <= 0 {
		return
	}
	c.mu.Lock()
	c.entries[key] = cachedChart{
		html:    html,
		expires: time.Now().Add(c.ttl),
	}
	c.mu.Unlock()
}

// seriesHash returns a deterministic hash of the plotted data so cache
// entries invalidate when the underlying collections change.
func seriesHash(series []ChartSeries) string {
	if len(series) == 0 {
		return "empty"
	}
	b, err := json.Marshal(series)
	if err != nil {
		return "invalid"
	}
	sum := sha1.Sum(b)
	return hex.EncodeToString(sum[:])
}
