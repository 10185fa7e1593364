package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"strings"
	"time"
)

// The kiosk protocol is one request per line:
//
//	<patient_id>|<symptom text>
//
// Each line is forwarded to the engine's check-in endpoint and the
// kiosk gets back a single line: "OK <doctor> <position>" or
// "QUEUED <entry>" when the patient was taken for manual triage.

var (
	engineURL  = envOr("ENGINE_URL", "http://localhost:8090")
	httpClient = &http.Client{Timeout: 10 * time.Second}
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func main() {
	addr := envOr("LISTEN_ADDR", ":2575")

	listener, err := net.Listen("tcp", addr)
	if err != nil {
		log.Fatalf("Failed to listen: %v", err)
	}
	defer listener.Close()

	log.Printf("Kiosk listener started on %s, forwarding to %s", addr, engineURL)

	for {
		conn, err := listener.Accept()
		if err != nil {
			log.Printf("Accept error: %v", err)
			continue
		}

		go handleConnection(conn)
	}
}

func handleConnection(conn net.Conn) {
	defer conn.Close()

	scanner := bufio.NewScanner(conn)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		reply := processLine(line)
		fmt.Fprintln(conn, reply)
	}
	if err := scanner.Err(); err != nil {
		log.Printf("Connection read error: %v", err)
	}
}

func processLine(line string) string {
	patientID, symptoms, ok := strings.Cut(line, "|")
	patientID = strings.TrimSpace(patientID)
	if !ok || patientID == "" {
		return "ERR malformed line, expected patient_id|symptoms"
	}

	resp, err := forwardCheckin(patientID, strings.TrimSpace(symptoms))
	if err != nil {
		log.Printf("Forward failed for %s: %v", patientID, err)
		return "ERR engine unavailable"
	}

	if resp.Record != nil {
		return fmt.Sprintf("OK %s %d", resp.Record.DoctorID, resp.Record.Slot.DaySequenceNumber)
	}
	return fmt.Sprintf("QUEUED %s", resp.EntryID)
}

type checkinReply struct {
	Record *struct {
		DoctorID string `json:"doctor_id"`
		Slot     struct {
			DaySequenceNumber int `json:"day_sequence_number"`
		} `json:"slot"`
	} `json:"record"`
	EntryID string `json:"entry_id"`
}

func forwardCheckin(patientID, symptoms string) (*checkinReply, error) {
	body, err := json.Marshal(map[string]string{
		"patient_id": patientID,
		"symptoms":   symptoms,
	})
	if err != nil {
		return nil, err
	}

	resp, err := httpClient.Post(engineURL+"/checkin", "application/json", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusAccepted {
		return nil, fmt.Errorf("engine returned %s", resp.Status)
	}

	var reply checkinReply
	if err := json.NewDecoder(resp.Body).Decode(&reply); err != nil {
		return nil, err
	}
	return &reply, nil
}
