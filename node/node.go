package node

import "os"

// Name identifies the host the tool runs on in log output
func Name() string {
	nodeName := os.Getenv("NODE_NAME")
	if nodeName == "" {
		nodeName = os.Getenv("HOSTNAME")
	}
	if nodeName == "" {
		if h, err := os.Hostname(); err == nil {
			nodeName = h
		}
	}
	if nodeName == "" {
		nodeName = "unknown"
	}
	return nodeName
}
