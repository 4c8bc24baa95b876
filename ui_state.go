package main

type uiState struct {
	mode        mode
	command     CommandInput
	timeWindow  timeWindowUI
	fields      fieldsUI
	showSummary bool
	noticeMsg   string
	noticeType  string
	noticeSeq   int
	searchQuery string
}
