package service

import (
	"context"
	"testing"

	"magiars-be/internal/dto"
	"magiars-be/pkg/hours"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBusinessHoursGetDefaults(t *testing.T) {
	_, uowFactory := newTestDB(t)
	svc := NewBusinessHoursService(uowFactory, nopLogger{})

	got, err := svc.Get(context.Background())
	require.NoError(t, err)

	want := hours.DefaultConfig()
	assert.Equal(t, want.Enabled, got.Enabled)
	assert.Equal(t, want.Timezone, got.Timezone)
	assert.Equal(t, want.Schedule["saturday"], got.Schedule["saturday"])
}

func TestBusinessHoursUpdateBustsCache(t *testing.T) {
	_, uowFactory := newTestDB(t)
	svc := NewBusinessHoursService(uowFactory, nopLogger{})
	ctx := context.Background()

	// Prime the cache with the defaults.
	_, err := svc.Get(ctx)
	require.NoError(t, err)

	updated, err := svc.Update(ctx, &dto.UpdateBusinessHoursRequest{
		Enabled:  true,
		Timezone: "UTC",
		Schedule: hours.Schedule{
			"monday": {Open: "08:00", Close: "12:00", Enabled: true},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "UTC", updated.Timezone)

	// A fresh read must see the new config, not the cached defaults.
	got, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "UTC", got.Timezone)
	assert.Equal(t, "08:00", got.Schedule["monday"].Open)
}

func TestIsAvailableWithDisabledConfig(t *testing.T) {
	_, uowFactory := newTestDB(t)
	svc := NewBusinessHoursService(uowFactory, nopLogger{})
	ctx := context.Background()

	_, err := svc.Update(ctx, &dto.UpdateBusinessHoursRequest{
		Enabled:  false,
		Timezone: "America/Bogota",
		Schedule: hours.DefaultConfig().Schedule,
	})
	require.NoError(t, err)

	assert.True(t, svc.IsAvailable(ctx), "disabled gating means always available")
}

func TestIsAvailableFailsOpenOnBadTimezone(t *testing.T) {
	_, uowFactory := newTestDB(t)
	svc := NewBusinessHoursService(uowFactory, nopLogger{})
	ctx := context.Background()

	_, err := svc.Update(ctx, &dto.UpdateBusinessHoursRequest{
		Enabled:  true,
		Timezone: "Mars/Olympus",
		Schedule: hours.DefaultConfig().Schedule,
	})
	require.NoError(t, err)

	assert.True(t, svc.IsAvailable(ctx))
}
