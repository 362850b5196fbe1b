package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/apx-soporte/warranty-tracker/internal/entity"
)

func TestItemKey(t *testing.T) {
	serial := "  SN1  "
	item := &entity.RMAItem{RMANumber: " RMA1 ", Serial: &serial}
	assert.Equal(t, entity.ItemKey{RMANumber: "RMA1", Serial: "SN1"}, item.Key())

	// A missing serial keys as the empty string, so serial-less lines share
	// one identity per RMA number.
	noSerial := &entity.RMAItem{RMANumber: "RMA2"}
	assert.Equal(t, entity.ItemKey{RMANumber: "RMA2", Serial: ""}, noSerial.Key())
}
