// Package command is the parsing boundary described in spec.md 6: it turns
// wire JSON records into validated Command values. Numeric fields
// (limit_price, amount) are deliberately left as strings here — exact
// decimal parsing and positivity checks happen inside the matching core
// (internal/engine), per spec.md 4.3, so that an InvalidDecimal error is
// always attributable to the core's boundary contract rather than this
// package guessing at precision rules.
package command

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"matchbook/internal/apperr"
	"matchbook/internal/common"
)

// rawCommand is the wire shape from spec.md 6: keys are exactly as given
// on the input contract, all snake_case.
type rawCommand struct {
	TypeOp     string `json:"type_op" validate:"required,oneof=CREATE DELETE"`
	AccountID  string `json:"account_id"`
	Amount     string `json:"amount"`
	OrderID    string `json:"order_id" validate:"required"`
	Pair       string `json:"pair"`
	LimitPrice string `json:"limit_price"`
	Side       string `json:"side" validate:"omitempty,oneof=BUY SELL"`
}

// Command is the validated, enum-typed form Ingest consumes. Fields other
// than Op and OrderID are not meaningful on DELETE, matching spec.md 3.
type Command struct {
	Op         common.Op
	OrderID    string
	AccountID  string
	Pair       string
	Side       common.Side
	LimitPrice string
	Amount     string
}

var validate = validator.New()

// ParseAll decodes a JSON array of wire records into validated Commands.
// A record missing a required field fails the whole batch with
// InputParse; a record with an unknown type_op/side fails with
// InvalidEnum. There is no partial parse.
func ParseAll(data []byte) ([]Command, error) {
	var raw []rawCommand
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, apperr.Wrap(apperr.KindInputParse, "malformed input JSON", err)
	}

	cmds := make([]Command, 0, len(raw))
	for i, r := range raw {
		cmd, err := r.toCommand()
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		cmds = append(cmds, cmd)
	}
	return cmds, nil
}

func (r rawCommand) toCommand() (Command, error) {
	// Side is not consulted on DELETE, so it is not validated there either.
	if r.TypeOp == "DELETE" {
		r.Side = ""
	}
	if err := validate.Struct(r); err != nil {
		return Command{}, classifyValidationErr(err)
	}

	op, err := common.ParseOp(r.TypeOp)
	if err != nil {
		return Command{}, apperr.Wrap(apperr.KindInvalidEnum, "invalid type_op", err)
	}

	cmd := Command{
		Op:         op,
		OrderID:    r.OrderID,
		AccountID:  r.AccountID,
		Pair:       r.Pair,
		LimitPrice: r.LimitPrice,
		Amount:     r.Amount,
	}

	// Side is only meaningful (and required) on CREATE; spec.md 3 says
	// fields other than op/order_id are ignored on DELETE.
	if op == common.OpCreate {
		side, err := common.ParseSide(r.Side)
		if err != nil {
			return Command{}, apperr.Wrap(apperr.KindInvalidEnum, "invalid side", err)
		}
		cmd.Side = side
	}
	return cmd, nil
}

// classifyValidationErr splits validator failures along the spec's
// InputParse/InvalidEnum line: a missing required field (order_id) is a
// malformed record, not a bad enum value, even though both currently
// come out of the same validate.Struct call.
func classifyValidationErr(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			if fe.Tag() == "required" {
				return apperr.Wrap(apperr.KindInputParse, "missing required field "+fe.Field(), err)
			}
		}
	}
	return apperr.Wrap(apperr.KindInvalidEnum, "invalid enum value", err)
}
