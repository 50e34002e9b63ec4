package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/brickworks/brickworks-api/tests/testutil"
)

func TestNextSequenceIncrements(t *testing.T) {
	db := testutil.NewTestDB(t)

	first, err := NextSequence(db, SequenceOrder)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), first)

	second, err := NextSequence(db, SequenceOrder)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), second)
}

func TestNextSequenceCountersAreIndependent(t *testing.T) {
	db := testutil.NewTestDB(t)

	for i := 0; i < 3; i++ {
		_, err := NextSequence(db, SequenceOrder)
		assert.NoError(t, err)
	}

	roundSeq, err := NextSequence(db, SequenceRound)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), roundSeq, "round counter must not be affected by the order counter")

	invoiceSeq, err := NextSequence(db, SequenceInvoice)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), invoiceSeq)
}
