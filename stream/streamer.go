package stream

import (
	"encoding/json"
	"log"
	"time"

	"github.com/eclipse/paho.mqtt.golang"
)

// Streamer publishes diagram frames over MQTT and takes control messages
// from drawing clients.
type Streamer struct {
	config     Config
	client     mqtt.Client
	controller FrameSource
}

// NewStreamer creates an instance of a Streamer.
func NewStreamer(config Config, client mqtt.Client, controller FrameSource) *Streamer {
	s := new(Streamer)
	s.config = config
	s.client = client
	s.controller = controller
	return s
}

func (s *Streamer) handleControlMessages(client mqtt.Client, msg mqtt.Message) {
	log.Printf("Received msg %d on %s: %s\n", msg.MessageID(), msg.Topic(), msg.Payload())

	var message ControlMessage
	if err := json.Unmarshal(msg.Payload(), &message); err != nil {
		log.Printf("Ignoring malformed control message: %v", err)
		return
	}

	if _, err := s.controller.Apply(message); err != nil {
		log.Printf("Failed to apply control message: %v", err)
	}
}

// Subscribe listens for control messages.
func (s *Streamer) Subscribe() error {
	token := s.client.Subscribe(s.config.Mqtt.Topics.Control, 0, s.handleControlMessages)
	token.Wait()
	return token.Error()
}

// SendFrame sends a frame as JSON to the diagram topic.
func (s *Streamer) SendFrame(f *Frame) error {
	b, err := f.MarshalBinary()
	if err != nil {
		return err
	}
	token := s.client.Publish(s.config.Mqtt.Topics.Diagram, 1, true, b)
	token.Wait()
	return token.Error()
}

// Run sends each new frame until done is closed.
func (s *Streamer) Run(done <-chan struct{}) {
	publishTimer := time.NewTicker(s.config.FrameInterval())
	defer publishTimer.Stop()

	for {
		select {
		case <-done:
			return
		case <-publishTimer.C:
			f, changed := s.controller.CalculateFrame()
			if !changed {
				continue
			}
			if err := s.SendFrame(f); err != nil {
				log.Printf("Failed to send frame %d: %v", f.Seq, err)
			}
		}
	}
}
