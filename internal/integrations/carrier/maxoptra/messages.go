package maxoptra

import "fmt"

// endpoint describes one order sub-resource and the wording used for its failures.
type endpoint struct {
	path string

	missingKey  string
	missingBase string
	transport   string
	notFound    string
	rejected    func(status int) string
	unavailable string
	unexpected  string
	invalid     string
	noData      string
}

var widgetEndpoint = endpoint{
	path:        "widget",
	missingKey:  "Tracking by reference is not configured.",
	missingBase: "Tracking by reference is not configured correctly. Please set the Maxoptra base URL.",
	transport:   "Unable to contact the tracking service. Please try again later. (Technical detail: %s)",
	notFound:    "No delivery was found for that reference.",
	rejected: func(status int) string {
		return fmt.Sprintf("The tracking service rejected the request (HTTP %d). This can happen if "+
			"the API key is invalid, the Maxoptra account URL is incorrect, or network "+
			"access to Maxoptra is blocked. Please contact support.", status)
	},
	unavailable: "The tracking service is temporarily unavailable. Please try again later.",
	unexpected:  "Unexpected response from the tracking service.",
	invalid:     "Received an invalid response from the tracking service.",
	noData:      "The tracking service did not return a tracking number for that reference.",
}

var podEndpoint = endpoint{
	path:        "pod",
	missingKey:  "Proof of delivery is not available because the API key is missing.",
	missingBase: "Proof of delivery is not configured correctly. Please set the Maxoptra base URL.",
	transport:   "Unable to retrieve proof of delivery at this time. (Technical detail: %s)",
	notFound:    "No proof of delivery was found for this order yet.",
	rejected: func(int) string {
		return "The tracking service rejected the proof-of-delivery request. Please contact support."
	},
	unavailable: "The proof-of-delivery service is temporarily unavailable.",
	unexpected:  "Unexpected response from the proof-of-delivery service.",
	invalid:     "Received an invalid proof-of-delivery response from the tracking service.",
	noData:      "Proof-of-delivery information is not currently available for this order.",
}
