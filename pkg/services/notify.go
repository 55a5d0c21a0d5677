package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ofarias/shift-roster/pkg/db"
	"github.com/ofarias/shift-roster/pkg/reports"
	"github.com/ofarias/shift-roster/pkg/roster"
)

// Mailer sends one email. gmailclient.Client implements it.
type Mailer interface {
	SendEmail(to, subject, body string) error
}

// OverloadAlert records one notification about a professional whose
// projected monthly hours exceed their configured cap
type OverloadAlert struct {
	Ref             string
	ProfessionalID  string
	Name            string
	Email           string
	ProjectedHours  float64
	MonthlyHourCap  float64
	Sent            bool
	SendError       string
}

// NotifyOverload computes the workload summaries for the period and
// emails every professional whose 30-day projection exceeds their
// monthly maximum. With dryRun set, the alerts are computed and
// returned but no email is sent.
func NotifyOverload(ctx context.Context, database db.Database, mailer Mailer, logger *zap.Logger, hospitalID string, from, to time.Time, dryRun bool) ([]OverloadAlert, error) {
	result, err := WorkloadReport(ctx, database, logger, hospitalID, from, to)
	if err != nil {
		return nil, err
	}

	professionals, err := database.GetProfessionals(ctx, hospitalID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch professionals: %w", err)
	}
	byID := db.ProfessionalsByID(professionals)

	var alerts []OverloadAlert
	for _, summary := range result.Summaries {
		professional, ok := byID[summary.ProfessionalID]
		if !ok {
			continue
		}
		if reports.CheckCap(summary, professional) != reports.CapOver {
			continue
		}

		alert := OverloadAlert{
			Ref:            uuid.New().String(),
			ProfessionalID: summary.ProfessionalID,
			Name:           summary.Name,
			Email:          professional.Email,
			ProjectedHours: summary.Projected30DayHours,
			MonthlyHourCap: *professional.MonthlyHourCapMax,
		}

		if professional.Email == "" {
			alert.SendError = "professional has no email address"
			logger.Warn("Cannot notify overloaded professional without email",
				zap.String("professional_id", summary.ProfessionalID))
			alerts = append(alerts, alert)
			continue
		}

		if dryRun {
			logger.Info("Dry run: would send overload alert",
				zap.String("professional_id", summary.ProfessionalID),
				zap.Float64("projected_hours", summary.Projected30DayHours))
			alerts = append(alerts, alert)
			continue
		}

		subject := fmt.Sprintf("Workload alert: projected %.1fh against a %.1fh monthly cap", alert.ProjectedHours, alert.MonthlyHourCap)
		body := overloadBody(alert, from, to, summary)
		if err := mailer.SendEmail(professional.Email, subject, body); err != nil {
			alert.SendError = err.Error()
			logger.Error("Failed to send overload alert",
				zap.String("professional_id", summary.ProfessionalID),
				zap.Error(err))
		} else {
			alert.Sent = true
			logger.Info("Overload alert sent",
				zap.String("professional_id", summary.ProfessionalID),
				zap.String("ref", alert.Ref))
		}
		alerts = append(alerts, alert)
	}

	logger.Info("Overload notification pass finished",
		zap.Int("alerts", len(alerts)),
		zap.Bool("dry_run", dryRun))

	return alerts, nil
}

func overloadBody(alert OverloadAlert, from, to time.Time, summary roster.ProfessionalSummary) string {
	return fmt.Sprintf(
		"Hello %s,\n\n"+
			"Your roster for %s to %s projects %.1f hours over a 30-day window, above your configured monthly maximum of %.1f hours.\n\n"+
			"Period hours: %.1f\nTotal shifts: %d (night: %d)\nLongest consecutive-day run: %d\n\n"+
			"Please contact your coordinator to review the roster.\n\n"+
			"Alert reference: %s\n",
		alert.Name,
		from.Format("2006-01-02"), to.Format("2006-01-02"),
		alert.ProjectedHours, alert.MonthlyHourCap,
		summary.PeriodHours, summary.TotalShifts, summary.NightShifts, summary.MaxConsecutiveDays,
		alert.Ref,
	)
}
