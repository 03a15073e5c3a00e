package dto

import "errors"

var errNothingToRefund = errors.New("se requiere al menos una unidad o envío a reembolsar")
