// post-student is a standalone client that exercises the student
// deserialization endpoint: it POSTs one record and prints the server's
// JSON reply.
//
//	go run ./cmd/post-student --url=http://localhost:8082/api/students
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
)

func main() {
	url := flag.String("url", "http://localhost:8082/api/students", "students endpoint URL")
	name := flag.String("name", "John Doe", "student name")
	roll := flag.Int("roll", 123, "student roll number")
	city := flag.String("city", "New York", "student city")
	flag.Parse()

	payload := map[string]any{
		"name": *name,
		"roll": *roll,
		"city": *city,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		log.Fatalf("marshal payload: %v", err)
	}

	resp, err := http.Post(*url, "application/json", bytes.NewReader(body))
	if err != nil {
		log.Fatalf("POST %s: %v", *url, err)
	}
	defer resp.Body.Close()

	var data map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		log.Fatalf("decode response: %v", err)
	}

	fmt.Println("Status Code:", resp.StatusCode)
	fmt.Println("Response:", data)
}
