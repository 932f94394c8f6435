package main

import (
	"hotel/shared/constant"
	"strconv"

	"github.com/rs/zerolog/log"
)

// roomCount reads the number of rooms from the first argument. A missing,
// unparseable or non-positive argument falls back to the configured count,
// and a non-positive configured count falls back to constant.DefaultRooms.
func roomCount(args []string, configured int) int {
	fallback := configured
	if fallback < 1 {
		fallback = constant.DefaultRooms
	}

	if len(args) == 0 {
		return fallback
	}

	rooms, err := strconv.Atoi(args[0])
	if err != nil || rooms < 1 {
		log.Warn().Str("argument", args[0]).Int("rooms", fallback).Msg("Invalid room count argument, using default.")

		return fallback
	}

	return rooms
}
