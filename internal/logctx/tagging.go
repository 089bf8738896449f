package logctx

import (
	"context"
	"loglib/internal/global"
	"strings"
)

// Stores the application name used by context-aware logging calls
func WithApplication(ctx context.Context, name string) (newCtx context.Context) {
	newCtx = context.WithValue(ctx, global.ApplicationKey, name)
	return
}

// Extracts application name from context
func GetApplication(ctx context.Context) (name string, present bool) {
	name, present = ctx.Value(global.ApplicationKey).(string)
	if name == "" {
		present = false
	}
	return
}

// Append new tag to tag list.
// It performs copy-on-write to preserve immutability
func AppendCtxTag(ctx context.Context, newTag string) (newCtx context.Context) {
	old := GetTagList(ctx)

	// copy old slice, prevents mutation of parent context
	tags := append(append([]string(nil), old...), newTag)

	newCtx = context.WithValue(ctx, global.LogTagsKey, tags)
	return
}

// Extracts tag list from context or returns empty array
func GetTagList(ctx context.Context) (tags []string) {
	tags, validAssert := ctx.Value(global.LogTagsKey).([]string)
	if !validAssert {
		tags = []string{}
		return
	}
	return
}

// Prefixes message with context tags as tag1/tag2: message
func TagMessage(ctx context.Context, message string) (tagged string) {
	tags := GetTagList(ctx)
	if len(tags) == 0 {
		tagged = message
		return
	}
	tagged = strings.Join(tags, "/") + ": " + message
	return
}
