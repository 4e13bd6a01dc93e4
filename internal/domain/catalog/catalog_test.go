package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupAndLabels(t *testing.T) {
	e, ok := Lookup(GroupShift, "morning")
	require.True(t, ok)
	assert.Equal(t, "08:00", *e.StartTime)
	assert.Equal(t, "16:00", *e.EndTime)

	rest, ok := Lookup(GroupShift, "rest")
	require.True(t, ok)
	assert.Nil(t, rest.StartTime)
	assert.Nil(t, rest.EndTime)

	assert.Equal(t, "Late", Label(GroupAttendanceStatus, "late", LocaleEN))
	assert.Equal(t, "迟到", Label(GroupAttendanceStatus, "late", LocaleZH))
	assert.Equal(t, "Unknown", Label(GroupAttendanceStatus, "missing", LocaleEN))
	assert.Equal(t, "#F53F3F", Color(GroupAttendanceStatus, "late"))
	assert.Equal(t, "gray", Color(GroupLeaveType, "missing"))
}

func TestEveryGroupHasLabelsInEveryLocale(t *testing.T) {
	for group, entries := range All() {
		require.NotEmpty(t, entries, group)
		for _, e := range entries {
			assert.NotEmpty(t, e.Labels[LocaleEN], "%s/%s", group, e.Value)
			assert.NotEmpty(t, e.Labels[LocaleZH], "%s/%s", group, e.Value)
			assert.NotEmpty(t, e.Color, "%s/%s", group, e.Value)
		}
	}
}

func TestValues(t *testing.T) {
	assert.Equal(t, []string{"morning", "afternoon", "night", "rest"}, Values(GroupShift))
	assert.Equal(t, []string{"pending", "approved", "rejected"}, Values(GroupLeaveStatus))
}

func TestParseLocale(t *testing.T) {
	assert.Equal(t, LocaleZH, ParseLocale("zh-CN"))
	assert.Equal(t, LocaleZH, ParseLocale(" ZH "))
	assert.Equal(t, LocaleEN, ParseLocale("en-US"))
	assert.Equal(t, LocaleEN, ParseLocale(""))
	assert.Equal(t, LocaleEN, ParseLocale("fr"))
}

func TestLocaleContext(t *testing.T) {
	assert.Equal(t, DefaultLocale, LocaleFrom(context.Background()))
	ctx := WithLocale(context.Background(), LocaleZH)
	assert.Equal(t, LocaleZH, LocaleFrom(ctx))
}

func TestPages(t *testing.T) {
	p := Pages()
	require.Len(t, p, 6)
	assert.Equal(t, "/", p[0].Path)
	p[0].Path = "/changed"
	assert.Equal(t, "/", Pages()[0].Path)
}
