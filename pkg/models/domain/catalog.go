package domain

import "sort"

// ReportKind is the stable identifier of one of the supported report generators.
type ReportKind string

const (
	ReportSalesBasic      ReportKind = "ventas_basico"
	ReportSalesByProduct  ReportKind = "ventas_por_producto"
	ReportSalesByClient   ReportKind = "ventas_por_cliente"
	ReportSalesByCategory ReportKind = "ventas_por_categoria"
	ReportSalesByPeriod   ReportKind = "ventas_por_periodo"
	ReportRFM             ReportKind = "analisis_rfm"
	ReportABC             ReportKind = "analisis_abc"
	ReportComparative     ReportKind = "comparativo_temporal"
	ReportExecutive       ReportKind = "dashboard_ejecutivo"
	ReportInventory       ReportKind = "reporte_inventario"
	ReportSalesForecast   ReportKind = "prediccion_ventas"
	ReportProductForecast ReportKind = "prediccion_por_producto"
	ReportRecommendations ReportKind = "recomendaciones"
	ReportMLDashboard     ReportKind = "dashboard_ml"
)

// OutputFormat names a rendering target for a generated report.
type OutputFormat string

const (
	FormatJSON  OutputFormat = "json"
	FormatPDF   OutputFormat = "pdf"
	FormatExcel OutputFormat = "excel"
)

// CatalogEntry describes one report the command interpreter can route to.
// Entries are static configuration: they are built once at init and never
// mutated, so concurrent reads need no locking.
type CatalogEntry struct {
	Kind         ReportKind
	Name         string
	Description  string
	Keywords     []string
	Formats      []OutputFormat
	Priority     int
	ML           bool
	RequiresUser bool
}

// SupportsFormat reports whether the entry can be rendered as f.
func (e CatalogEntry) SupportsFormat(f OutputFormat) bool {
	for _, supported := range e.Formats {
		if supported == f {
			return true
		}
	}
	return false
}

// DefaultFormat returns the first supported format, used when a requested
// format has to be downgraded.
func (e CatalogEntry) DefaultFormat() OutputFormat {
	return e.Formats[0]
}

var allFormats = []OutputFormat{FormatPDF, FormatExcel, FormatJSON}

var catalog = buildCatalog()

func buildCatalog() []CatalogEntry {
	entries := []CatalogEntry{
		{
			Kind:        ReportSalesBasic,
			Name:        "Reporte de Ventas",
			Description: "Resumen general de ventas en un rango de fechas",
			Keywords: []string{
				"reporte de ventas", "informe de ventas", "reporte ventas",
				"resumen de ventas", "ventas", "sales report",
			},
			Formats:  allFormats,
			Priority: 5,
		},
		{
			Kind:        ReportSalesByProduct,
			Name:        "Ventas por Producto",
			Description: "Ventas agrupadas por producto",
			Keywords: []string{
				"ventas por producto", "por producto", "productos vendidos",
				"productos mas vendidos", "productos",
			},
			Formats:  allFormats,
			Priority: 8,
		},
		{
			Kind:        ReportSalesByClient,
			Name:        "Ventas por Cliente",
			Description: "Ventas agrupadas por cliente",
			Keywords: []string{
				"ventas por cliente", "por cliente", "mejores clientes",
				"clientes frecuentes",
			},
			Formats:  allFormats,
			Priority: 8,
		},
		{
			Kind:        ReportSalesByCategory,
			Name:        "Ventas por Categoría",
			Description: "Ventas agrupadas por categoría de producto",
			Keywords: []string{
				"ventas por categoria", "por categoria", "categorias vendidas",
				"categorias",
			},
			Formats:  allFormats,
			Priority: 8,
		},
		{
			Kind:        ReportSalesByPeriod,
			Name:        "Ventas por Período",
			Description: "Evolución de ventas a lo largo del tiempo",
			Keywords: []string{
				"ventas por periodo", "ventas por dia", "ventas diarias",
				"evolucion de ventas", "ventas por mes", "ventas mensuales",
			},
			Formats:  allFormats,
			Priority: 8,
		},
		{
			Kind:        ReportRFM,
			Name:        "Análisis RFM",
			Description: "Segmentación de clientes por recencia, frecuencia y monto",
			Keywords: []string{
				"analisis rfm", "rfm", "segmentacion de clientes",
				"segmentacion rfm", "segmentar clientes",
			},
			Formats:  allFormats,
			Priority: 9,
		},
		{
			Kind:        ReportABC,
			Name:        "Análisis ABC",
			Description: "Clasificación de productos por principio de Pareto",
			Keywords: []string{
				"analisis abc", "abc", "pareto", "clasificacion abc",
				"clasificacion de productos",
			},
			Formats:  allFormats,
			Priority: 9,
		},
		{
			Kind:        ReportComparative,
			Name:        "Comparativo Temporal",
			Description: "Comparación de ventas entre dos períodos",
			Keywords: []string{
				"comparativo", "comparacion", "comparar ventas", "comparar",
				"versus", "vs",
			},
			Formats:  allFormats,
			Priority: 9,
		},
		{
			Kind:        ReportExecutive,
			Name:        "Dashboard Ejecutivo",
			Description: "Indicadores clave del negocio en un solo reporte",
			Keywords: []string{
				"dashboard ejecutivo", "resumen ejecutivo", "panel ejecutivo",
				"dashboard", "kpis",
			},
			Formats:  allFormats,
			Priority: 7,
		},
		{
			Kind:        ReportInventory,
			Name:        "Reporte de Inventario",
			Description: "Estado de stock y productos por reponer",
			Keywords: []string{
				"inventario", "stock", "existencias", "reporte de inventario",
				"productos agotados",
			},
			Formats:  allFormats,
			Priority: 8,
		},
		{
			Kind:        ReportSalesForecast,
			Name:        "Predicción de Ventas",
			Description: "Pronóstico de ventas para los próximos días",
			Keywords: []string{
				"prediccion de ventas", "predicciones de ventas", "prediccion",
				"predicciones", "pronostico de ventas", "pronostico", "forecast",
			},
			Formats:  []OutputFormat{FormatJSON},
			Priority: 9,
			ML:       true,
		},
		{
			Kind:        ReportProductForecast,
			Name:        "Predicción por Producto",
			Description: "Pronóstico de demanda por producto",
			Keywords: []string{
				"prediccion por producto", "pronostico por producto",
				"demanda de productos", "demanda futura",
			},
			Formats:  []OutputFormat{FormatJSON},
			Priority: 9,
			ML:       true,
		},
		{
			Kind:        ReportRecommendations,
			Name:        "Recomendaciones",
			Description: "Productos recomendados para un cliente",
			Keywords: []string{
				"recomendaciones", "recomendacion", "productos recomendados",
				"que me recomiendas", "sugerencias de productos",
			},
			Formats:      []OutputFormat{FormatJSON},
			Priority:     9,
			ML:           true,
			RequiresUser: true,
		},
		{
			Kind:        ReportMLDashboard,
			Name:        "Dashboard ML",
			Description: "Panel con predicciones y recomendaciones combinadas",
			Keywords: []string{
				"dashboard ml", "panel ml", "dashboard de ml",
				"dashboard inteligente", "panel inteligente",
			},
			Formats:      []OutputFormat{FormatJSON},
			Priority:     9,
			ML:           true,
			RequiresUser: true,
		},
	}

	// Stable iteration order: classification ties resolve lexicographically
	// by identifier.
	sort.Slice(entries, func(i, j int) bool { return entries[i].Kind < entries[j].Kind })
	return entries
}

// Catalog returns the full report catalog. The returned slice is shared and
// must be treated as read-only.
func Catalog() []CatalogEntry {
	return catalog
}

// CatalogEntryFor looks up a catalog entry by report identifier.
func CatalogEntryFor(kind ReportKind) (CatalogEntry, bool) {
	for _, e := range catalog {
		if e.Kind == kind {
			return e, true
		}
	}
	return CatalogEntry{}, false
}
