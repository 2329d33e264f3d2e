package parser

import "github.com/de-tools/report-pilot/pkg/models/domain"

type groupingGroup struct {
	groupBy  domain.GroupBy
	keywords []string
}

var groupingGroups = []groupingGroup{
	{domain.GroupByProduct, []string{
		"por producto", "por productos", "producto", "productos",
		"articulo", "articulos", "by product",
	}},
	{domain.GroupByClient, []string{
		"por cliente", "por clientes", "cliente", "clientes",
		"comprador", "compradores", "by client",
	}},
	{domain.GroupByCategory, []string{
		"por categoria", "por categorias", "categoria", "categorias",
		"rubro", "rubros", "by category",
	}},
	{domain.GroupByDate, []string{
		"por fecha", "por dia", "por mes", "diario", "mensual",
		"por periodo", "by date",
	}},
}

// extractGrouping detects the grouping dimension; the empty string means no
// grouping was requested.
func extractGrouping(text string) domain.GroupBy {
	for _, group := range groupingGroups {
		for _, keyword := range group.keywords {
			if containsPhrase(text, keyword) {
				return group.groupBy
			}
		}
	}
	return ""
}
