package semantic

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMethodIsFetch(t *testing.T) {
	assert.True(t, MethodGet.IsFetch())
	assert.True(t, MethodHead.IsFetch())
	assert.False(t, MethodPost.IsFetch())
	assert.False(t, MethodPut.IsFetch())
	assert.False(t, Method("PROPFIND").IsFetch())
}

func TestFormatDate(t *testing.T) {
	loc := time.FixedZone("KST", 9*60*60)
	d := time.Date(2012, time.March, 4, 14, 5, 6, 0, loc)

	assert.Equal(t, "Sun, 04 Mar 2012 05:05:06 GMT", FormatDate(d))
}
