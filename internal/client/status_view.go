// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/MKhiriev/device-sync-gate/internal/service"
	"github.com/MKhiriev/device-sync-gate/models"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	labelStyle  = lipgloss.NewStyle().Faint(true)
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

// Status is a snapshot of everything the status command prints.
type Status struct {
	Identity     models.DeviceIdentity
	BuildInfo    models.AppBuildInfo
	Registration models.RegistrationState
	Policy       service.PolicyStatus
	SyncEnabled  bool
	Missing      models.CapabilitySet
	Decisions    []service.Decision
	Now          time.Time
}

// RenderStatus formats s as a header block followed by a per-category table.
func RenderStatus(s Status) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Device sync status"))
	b.WriteString("\n")
	writeField(&b, "device", s.Identity.DeviceID)
	writeField(&b, "version", s.BuildInfo.Version)
	writeField(&b, "registration", s.Registration.String())
	writeField(&b, "policy", s.Policy.String())
	writeField(&b, "sync", enabledText(s.SyncEnabled))
	if s.Missing.Len() > 0 {
		writeField(&b, "missing grants", strings.Join(s.Missing.Names(), ", "))
	}
	b.WriteString("\n")

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("CATEGORY", "POLICY", "GRANT", "TIMING", "INTERVAL", "NEXT", "SYNC").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	for _, d := range s.Decisions {
		t.Row(
			d.Category.String(),
			yesNo(d.PolicyAllowed),
			yesNo(d.CapabilityOK),
			yesNo(d.TimingOK),
			d.Interval.String(),
			nextText(d.NextEligibleAt, s.Now),
			yesNo(d.ShouldSync()),
		)
	}
	b.WriteString(t.Render())

	return b.String()
}

func writeField(b *strings.Builder, label, value string) {
	b.WriteString(labelStyle.Render(label + ":"))
	b.WriteString(" ")
	b.WriteString(value)
	b.WriteString("\n")
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}

func enabledText(v bool) string {
	if v {
		return "enabled"
	}
	return "disabled"
}

func nextText(next, now time.Time) string {
	if next.IsZero() {
		return "now"
	}
	return "in " + next.Sub(now).Round(time.Minute).String()
}
