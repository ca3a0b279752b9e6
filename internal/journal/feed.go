package journal

// Feed holds the entries shown to the user. Every refresh replaces the list
// wholesale; a failed refresh keeps the previous list visible.
//
// Refreshes are tagged with a generation so that a response arriving after a
// newer refresh started is dropped instead of overwriting
// fresher data.
type Feed struct {
	entries []Entry
	gen     uint64
	loading bool
	loaded  bool
	notice  Notice
}

// Begin starts a refresh and returns its generation.
func (f *Feed) Begin() uint64 {
	f.gen++
	f.loading = true
	return f.gen
}

// Apply replaces the list with the result of refresh gen. It returns false
// and changes nothing when gen is stale.
func (f *Feed) Apply(gen uint64, entries []Entry) bool {
	if gen != f.gen {
		return false
	}
	f.entries = append([]Entry(nil), entries...)
	f.loading = false
	f.loaded = true
	f.notice = Notice{}
	return true
}

// Fail records a failed refresh gen, keeping the current list. It returns
// false when gen is stale.
func (f *Feed) Fail(gen uint64, message string) bool {
	if gen != f.gen {
		return false
	}
	if message == "" {
		message = RefreshFailedNotice
	}
	f.loading = false
	f.notice = Notice{Kind: NoticeError, Text: message}
	return true
}

// DismissNotice clears the refresh error, if any.
func (f *Feed) DismissNotice() {
	f.notice = Notice{}
}

// Entries returns a copy of the current list in server order.
func (f *Feed) Entries() []Entry {
	return append([]Entry(nil), f.entries...)
}

// Len returns the number of entries.
func (f *Feed) Len() int { return len(f.entries) }

// Loading reports whether a refresh is in flight.
func (f *Feed) Loading() bool { return f.loading }

// Loaded reports whether at least one refresh has succeeded.
func (f *Feed) Loaded() bool { return f.loaded }

// Notice returns the last refresh error, if any.
func (f *Feed) Notice() Notice { return f.notice }
