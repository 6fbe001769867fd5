// delete-employee is a standalone client that deletes one employee by id
// and prints the raw response before attempting to parse it. A successful
// delete returns 204 with an empty body, so the parse step is conditional.
//
//	go run ./cmd/delete-employee --url=http://localhost:8082/api/employees --id=5
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
)

func main() {
	base := flag.String("url", "http://localhost:8082/api/employees", "employees endpoint URL")
	id := flag.Int64("id", 5, "employee id to delete")
	flag.Parse()

	url := fmt.Sprintf("%s/%d", *base, *id)

	req, err := http.NewRequest(http.MethodDelete, url, nil)
	if err != nil {
		log.Fatalf("build request: %v", err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		log.Fatalf("DELETE %s: %v", url, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Fatalf("read response: %v", err)
	}

	fmt.Println("Status Code:", resp.StatusCode)
	fmt.Println("Raw Response Text:", string(raw))

	if strings.TrimSpace(string(raw)) == "" {
		fmt.Println("Empty or non-JSON response")
		return
	}

	var data map[string]any
	if err := json.Unmarshal(raw, &data); err != nil {
		log.Fatalf("parse response: %v", err)
	}
	fmt.Println("Parsed JSON:", data)
}
