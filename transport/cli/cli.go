package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"hotel/config"
	"hotel/internal/domains/booking/model/dto"
	"hotel/internal/handlers/booking"
	"hotel/shared/logger"
	"hotel/transport/cli/response"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

const (
	optionBookRoom = iota + 1
	optionCheckAvailability
	optionRetrieveBookings
	optionExit
)

const maxLineLength = 4096

var errExit = errors.New("exit selected")

type CLI struct {
	Config  *config.Config
	Handler booking.Handler
	in      io.Reader
	out     io.Writer
}

func New(cfg *config.Config, handler booking.Handler) *CLI {
	return NewWithIO(cfg, handler, os.Stdin, os.Stdout)
}

func NewWithIO(cfg *config.Config, handler booking.Handler, in io.Reader, out io.Writer) *CLI {
	return &CLI{
		Config:  cfg,
		Handler: handler,
		in:      in,
		out:     out,
	}
}

// Serve runs the front desk menu until the operator exits, the input is
// exhausted or ctx is cancelled. Only a failing reader is reported as an error.
func (c *CLI) Serve(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := c.readLines(ctx)

	log.Info().Int("rooms", c.Handler.TotalRooms()).Msg("Front desk ready.")

	for {
		c.printMenu()

		err := c.selectOption(ctx, lines)

		switch {
		case err == nil:
			continue
		case errors.Is(err, errExit):
			log.Info().Msg("Exit selected. Shutting down now.")

			return nil
		case errors.Is(err, io.EOF):
			log.Info().Msg("Input closed. Shutting down now.")

			return nil
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			log.Warn().Msg("Received shutdown signal. Shutting down now.")

			return nil
		default:
			return fmt.Errorf("failed to read input: %w", err)
		}
	}
}

func (c *CLI) selectOption(ctx context.Context, lines *input) error {
	line, err := c.prompt(ctx, lines, "Enter option number")
	if err != nil {
		return err
	}

	option, err := strconv.Atoi(line)
	if err != nil {
		response.WithMessage(c.out, "Invalid menu selection.")

		return nil
	}

	switch option {
	case optionBookRoom:
		return c.bookRoom(ctx, lines)
	case optionCheckAvailability:
		return c.checkAvailability(ctx, lines)
	case optionRetrieveBookings:
		return c.retrieveBookings(ctx, lines)
	case optionExit:
		response.WithMessage(c.out, "Goodbye.")

		return errExit
	default:
		response.WithMessage(c.out, "Invalid menu selection.")

		return nil
	}
}

func (c *CLI) bookRoom(ctx context.Context, lines *input) error {
	var req dto.CreateBookingRequest
	var err error

	if req.GuestName, err = c.prompt(ctx, lines, "Guest name"); err != nil {
		return err
	}

	if req.Arrival, err = c.prompt(ctx, lines, "Arrival date (YYYY-MM-DD)"); err != nil {
		return err
	}

	if req.Checkout, err = c.prompt(ctx, lines, "Checkout date (YYYY-MM-DD)"); err != nil {
		return err
	}

	c.Handler.BookRoom(ctx, c.out, req)

	return nil
}

func (c *CLI) checkAvailability(ctx context.Context, lines *input) error {
	date, err := c.prompt(ctx, lines, "Date (YYYY-MM-DD)")
	if err != nil {
		return err
	}

	c.Handler.CheckAvailability(ctx, c.out, dto.AvailabilityRequest{Date: date})

	return nil
}

func (c *CLI) retrieveBookings(ctx context.Context, lines *input) error {
	pattern, err := c.prompt(ctx, lines, "Guest name pattern (regular expression)")
	if err != nil {
		return err
	}

	c.Handler.RetrieveBookings(ctx, c.out, dto.GuestBookingsRequest{Pattern: pattern})

	return nil
}

func (c *CLI) printMenu() {
	menu := fmt.Sprintf("\n==================\n%s front desk, %d rooms\nPlease select an option:\n"+
		"\t%d) Book a room\n\t%d) Check availability\n\t%d) Retrieve bookings\n\t%d) Exit\n",
		c.Config.App.Name, c.Handler.TotalRooms(),
		optionBookRoom, optionCheckAvailability, optionRetrieveBookings, optionExit)

	c.write(menu)
}

func (c *CLI) write(text string) {
	if _, err := io.WriteString(c.out, text); err != nil {
		logger.ErrorWithStack(err)
	}
}

// input delivers lines read from the operator. err is set before lines is
// closed and must only be read after that.
type input struct {
	lines chan string
	err   error
}

func (c *CLI) readLines(ctx context.Context) *input {
	in := &input{lines: make(chan string)}

	go func() {
		defer close(in.lines)

		reader := bufio.NewReader(c.in)
		for {
			line, err := readLine(reader)
			if err != nil {
				if !errors.Is(err, io.EOF) {
					in.err = err
				}

				return
			}

			select {
			case in.lines <- line:
			case <-ctx.Done():
				return
			}
		}
	}()

	return in
}

// readLine returns the next line without its terminator. Anything past
// maxLineLength is discarded so an overlong entry reaches the menu as an
// invalid answer instead of ending the session.
func readLine(reader *bufio.Reader) (string, error) {
	var line []byte

	for {
		fragment, isPrefix, err := reader.ReadLine()
		if err != nil {
			return "", err //nolint:wrapcheck
		}

		if room := maxLineLength - len(line); room > 0 {
			line = append(line, fragment[:min(len(fragment), room)]...)
		}

		if !isPrefix {
			return string(line), nil
		}
	}
}

func (c *CLI) prompt(ctx context.Context, in *input, label string) (string, error) {
	c.write("\n> " + label + ": ")

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-in.lines:
		if !ok {
			if in.err != nil {
				return "", in.err
			}

			return "", io.EOF
		}

		return strings.TrimSpace(line), nil
	}
}
