package localize

// Event names the host lifecycle point that triggered a conversion pass
type Event string

const (
	EventBeforeQuery Event = "before_query"
	EventAfterFind   Event = "after_find"
	EventBeforeSave  Event = "before_save"
	EventAfterSave   Event = "after_save"
)

// Hook observes interceptor passes. Before and After run around every
// declared field conversion, and once per acknowledgment event.
type Hook interface {
	Before(ctx *HookContext)
	After(ctx *HookContext)
}

// HookContext carries one field conversion. Hooks may replace Value in After.
type HookContext struct {
	Event     Event
	Locale    string
	Field     string
	Type      FieldType
	Raw       any
	Value     any
	Converted bool
	Err       error
	Record    map[string]any
	Metadata  map[string]any
}

func (ctx *HookContext) SetMetadata(key string, value any) {
	if ctx == nil || key == "" {
		return
	}
	if ctx.Metadata == nil {
		ctx.Metadata = make(map[string]any)
	}
	ctx.Metadata[key] = value
}

func (ctx *HookContext) MetadataValue(key string) (any, bool) {
	if ctx == nil || ctx.Metadata == nil {
		return nil, false
	}
	val, ok := ctx.Metadata[key]
	return val, ok
}

// HookFuncs adapts plain functions to Hook
type HookFuncs struct {
	BeforeFunc func(ctx *HookContext)
	AfterFunc  func(ctx *HookContext)
}

func (h HookFuncs) Before(ctx *HookContext) {
	if h.BeforeFunc != nil {
		h.BeforeFunc(ctx)
	}
}

func (h HookFuncs) After(ctx *HookContext) {
	if h.AfterFunc != nil {
		h.AfterFunc(ctx)
	}
}

func filterHooks(hooks []Hook) []Hook {
	var filtered []Hook
	for _, hook := range hooks {
		if hook == nil {
			continue
		}
		filtered = append(filtered, hook)
	}
	return filtered
}
