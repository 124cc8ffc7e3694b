package svn

import "encoding/xml"

// LogEntry is one <logentry> element from svn log --xml output.
type LogEntry struct {
	Revision int    `xml:"revision,attr"`
	Author   string `xml:"author"`
	Date     string `xml:"date"`
	Message  string `xml:"msg"`
}

type logDoc struct {
	XMLName xml.Name   `xml:"log"`
	Entries []LogEntry `xml:"logentry"`
}

func parseLog(data []byte) ([]LogEntry, error) {
	var doc logDoc
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return doc.Entries, nil
}
