// Package report computes dashboard aggregates and AI-written network
// insights over the partner collection.
package report

import (
	"math"
	"sort"
	"time"

	"github.com/partnerhub/partnerhub-cli/internal/model"
)

// upcomingWindowDays bounds the follow-up agenda shown on the
// dashboard.
const upcomingWindowDays = 7

// ComputeStats aggregates the network-level dashboard indicators.
func ComputeStats(companies []model.Company) model.DashboardStats {
	stats := model.DashboardStats{TotalCompanies: len(companies)}
	if len(companies) == 0 {
		return stats
	}

	active := 0
	for _, c := range companies {
		stats.TotalBrokers += c.BrokerCount
		if c.IsActive() {
			active++
		}
	}
	stats.AvgBrokers = int(math.Round(float64(stats.TotalBrokers) / float64(len(companies))))
	stats.ActivePercentage = int(math.Round(float64(active) / float64(len(companies)) * 100))
	return stats
}

// UpcomingContacts returns partners whose next scheduled contact falls
// between today and seven days out, soonest first. Records without a
// scheduled contact or with an unparseable date are skipped.
func UpcomingContacts(companies []model.Company, now time.Time) []model.Company {
	today := truncateDay(now)
	horizon := today.AddDate(0, 0, upcomingWindowDays)

	var upcoming []model.Company
	for _, c := range companies {
		d, err := time.Parse("2006-01-02", c.NextContactDate)
		if err != nil {
			continue
		}
		if d.Before(today) || d.After(horizon) {
			continue
		}
		upcoming = append(upcoming, c)
	}

	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].NextContactDate < upcoming[j].NextContactDate
	})
	return upcoming
}

// Urgency labels a scheduled contact date for the agenda: "Hoje",
// "Amanhã", or the short day/month form. Unparseable dates come back
// unchanged.
func Urgency(date string, now time.Time) string {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	today := truncateDay(now)
	switch {
	case d.Equal(today):
		return "Hoje"
	case d.Equal(today.AddDate(0, 0, 1)):
		return "Amanhã"
	default:
		return d.Format("02/01")
	}
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
