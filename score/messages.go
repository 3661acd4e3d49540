package score

import (
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

// All user-facing text the engine emits renders through one bundle so
// warnings, pattern descriptions and action items can be localized
// without touching the computation code.
var localizer = i18n.NewLocalizer(i18n.NewBundle(language.English), "en")

func localize(msg *i18n.Message, data map[string]interface{}, pluralCount interface{}) string {
	out, err := localizer.Localize(&i18n.LocalizeConfig{
		DefaultMessage: msg,
		TemplateData:   data,
		PluralCount:    pluralCount,
	})
	if err != nil {
		return msg.Other
	}
	return out
}

func redZoneWarning(days int) string {
	return localize(&i18n.Message{
		ID:    "RedZoneWarning",
		One:   "Projected to enter the red zone in {{.Days}} day.",
		Other: "Projected to enter the red zone in {{.Days}} days.",
	}, map[string]interface{}{"Days": days}, days)
}

func membersInRedActionItem(count int) string {
	return localize(&i18n.Message{
		ID:    "MembersInRed",
		One:   "{{.Count}} team member is in the red zone.",
		Other: "{{.Count}} team members are in the red zone.",
	}, map[string]interface{}{"Count": count}, count)
}

func highBurnoutActionItem(count int) string {
	return localize(&i18n.Message{
		ID:    "HighBurnout",
		One:   "{{.Count}} team member has a high burnout score.",
		Other: "{{.Count}} team members have high burnout scores.",
	}, map[string]interface{}{"Count": count}, count)
}

func teamTrendWorseningActionItem() string {
	return localize(&i18n.Message{
		ID:    "TeamTrendWorsening",
		Other: "Team burnout trend is worsening week over week.",
	}, nil, nil)
}

func weekdayPatternDescription(weekday string, delta float64, worse bool) string {
	if worse {
		return localize(&i18n.Message{
			ID:    "WeekdayWorse",
			Other: "Burnout scores run {{.Delta}} points above the personal average on {{.Weekday}}s.",
		}, map[string]interface{}{"Weekday": weekday, "Delta": delta}, nil)
	}
	return localize(&i18n.Message{
		ID:    "WeekdayBetter",
		Other: "Burnout scores run {{.Delta}} points below the personal average on {{.Weekday}}s.",
	}, map[string]interface{}{"Weekday": weekday, "Delta": delta}, nil)
}

func anomalyPatternDescription(date string, score float64, above bool) string {
	if above {
		return localize(&i18n.Message{
			ID:    "AnomalyHigh",
			Other: "Burnout score spiked to {{.Score}} on {{.Date}}, well above the recent average.",
		}, map[string]interface{}{"Date": date, "Score": score}, nil)
	}
	return localize(&i18n.Message{
		ID:    "AnomalyLow",
		Other: "Burnout score dropped to {{.Score}} on {{.Date}}, well below the recent average.",
	}, map[string]interface{}{"Date": date, "Score": score}, nil)
}

func trendPatternDescription(direction string, days int) string {
	return localize(&i18n.Message{
		ID:    "SustainedTrend",
		Other: "Burnout has been steadily {{.Direction}} over the last {{.Days}} days.",
	}, map[string]interface{}{"Direction": direction, "Days": days}, nil)
}
