package main

import (
	"encoding/json"
	"fmt"
	"io"
)

func writeJSON(w io.Writer, payload any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}

func writeOutcomes(w io.Writer, outcomes []resolveOutcome) error {
	for _, o := range outcomes {
		var err error
		if o.Error != "" {
			_, err = fmt.Fprintf(w, "%s\terror: %s\n", o.Path, o.Error)
		} else {
			_, err = fmt.Fprintf(w, "%s\t%s\t%s\n", o.Path, o.Source, o.URL)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func writeURLChecks(w io.Writer, checks []urlCheck) error {
	for _, c := range checks {
		mark := "unrecognized"
		if c.Recognized {
			mark = "ipfs"
		}
		if _, err := fmt.Fprintf(w, "%s\t%s\t%s\n", c.URL, mark, c.DisplayURL); err != nil {
			return err
		}
	}
	return nil
}
