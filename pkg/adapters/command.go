package adapters

import (
	"github.com/de-tools/report-pilot/pkg/models/api"
	"github.com/de-tools/report-pilot/pkg/models/domain"
)

func MapParsedCommandDomainToApi(cmd domain.ParsedCommand) api.ParsedCommand {
	result := api.ParsedCommand{
		Success:     cmd.Success,
		Kind:        string(cmd.Kind),
		Name:        cmd.Name,
		Description: cmd.Description,
		Format:      string(cmd.Format),
		Params:      mapParams(cmd.Params),
		Confidence:  cmd.Confidence,
		Warning:     cmd.Warning,
		Error:       cmd.Error,
	}
	for _, alt := range cmd.Alternatives {
		result.Alternatives = append(result.Alternatives, mapAlternative(alt))
	}
	return result
}

func mapParams(params domain.Params) api.Params {
	return api.Params{
		StartDate:      params.StartDate,
		EndDate:        params.EndDate,
		PeriodText:     params.PeriodText,
		GroupBy:        string(params.GroupBy),
		Limit:          params.Limit,
		MinAmount:      params.MinAmount,
		MaxAmount:      params.MaxAmount,
		Currency:       params.Currency,
		ForecastDays:   params.ForecastDays,
		Period1:        mapWindow(params.Period1),
		Period2:        mapWindow(params.Period2),
		FormatChanged:  params.FormatChanged,
		OriginalFormat: string(params.OriginalFormat),
	}
}

func mapWindow(window *domain.Window) *api.Window {
	if window == nil {
		return nil
	}
	return &api.Window{Start: window.Start, End: window.End, Label: window.Label}
}

func mapAlternative(alt domain.Alternative) api.Alternative {
	return api.Alternative{Kind: string(alt.Kind), Name: alt.Name, Score: alt.Score}
}

func MapReportDomainToApi(report *domain.Report) *api.Report {
	if report == nil {
		return nil
	}

	result := &api.Report{
		Kind:        string(report.Kind),
		Title:       report.Title,
		Subtitle:    report.Subtitle,
		Headers:     report.Headers,
		Rows:        report.Rows,
		Totals:      report.Totals,
		Summary:     report.Summary,
		GeneratedAt: report.GeneratedAt,
	}
	if report.Period != nil {
		result.Period = &api.TimePeriod{
			Start: report.Period.Start,
			End:   report.Period.End,
			Label: report.Period.Label,
		}
	}
	for _, p := range report.Predictions {
		result.Predictions = append(result.Predictions, api.Prediction{
			Date: p.Date, Label: p.Label, Value: p.Value,
		})
	}
	for _, item := range report.Items {
		result.Items = append(result.Items, api.ScoredItem{
			ID: item.ID, Name: item.Name, Score: item.Score, Reason: item.Reason,
		})
	}
	for _, section := range report.Sections {
		result.Sections = append(result.Sections, MapReportDomainToApi(section))
	}
	return result
}

func MapCommandOutcomeDomainToApi(outcome domain.CommandOutcome) api.CommandOutcome {
	result := api.CommandOutcome{
		Success: outcome.Success,
		Intent:  string(outcome.Intent),
		Command: MapParsedCommandDomainToApi(outcome.Command),
		Report:  MapReportDomainToApi(outcome.Report),
		Message: outcome.Message,
		Error:   outcome.Error,
	}
	for _, alt := range outcome.Suggestions {
		result.Suggestions = append(result.Suggestions, mapAlternative(alt))
	}
	return result
}

func MapCatalogEntryDomainToApi(entry domain.CatalogEntry) api.CatalogEntry {
	formats := make([]string, 0, len(entry.Formats))
	for _, f := range entry.Formats {
		formats = append(formats, string(f))
	}
	return api.CatalogEntry{
		Kind:        string(entry.Kind),
		Name:        entry.Name,
		Description: entry.Description,
		Formats:     formats,
		ML:          entry.ML,
	}
}
