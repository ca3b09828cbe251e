package main

import (
	"flag"
	"log"
	"os"
	"time"

	"github.com/eclipse/paho.mqtt.golang"
	"github.com/matt-g-everett/sssviz/api"
	"github.com/matt-g-everett/sssviz/diagram"
	"github.com/matt-g-everett/sssviz/results"
	"github.com/matt-g-everett/sssviz/stream"
)

type app struct {
	Config     stream.Config
	Input      diagram.Input
	Client     mqtt.Client
	Controller *stream.Controller
	Streamer   *stream.Streamer
}

func newApp() *app {
	a := new(app)
	return a
}

func (a *app) handleOnConnect(client mqtt.Client) {
	log.Println("Connected")
	if err := a.Streamer.Subscribe(); err != nil {
		log.Printf("Subscribe failed: %v", err)
	}
}

func (a *app) run() {
	if token := a.Client.Connect(); token.Wait() && token.Error() != nil {
		panic(token.Error())
	}
	a.Streamer.Run(nil)
}

func (a *app) readConfig(configPath string) {
	f, err := os.Open(configPath)
	if err != nil {
		panic(err)
	}
	defer f.Close()

	a.Config, err = stream.ReadConfig(f)
	if err != nil {
		panic(err)
	}
}

func (a *app) readResults(resultsPath string, domainsPath string) {
	if resultsPath != "" {
		f, err := os.Open(resultsPath)
		if err != nil {
			panic(err)
		}
		defer f.Close()

		a.Input.Results, err = results.Load(f)
		if err != nil {
			panic(err)
		}
		log.Printf("Loaded %d hits for a query of length %d", len(a.Input.Results.Hits), a.Input.Results.QueryLen)
	}

	if domainsPath != "" {
		f, err := os.Open(domainsPath)
		if err != nil {
			panic(err)
		}
		defer f.Close()

		a.Input.Domains, err = results.LoadDomains(f)
		if err != nil {
			panic(err)
		}
		log.Printf("Loaded %d domain matches", len(a.Input.Domains.Matches))
	}
}

func main() {
	// mqtt.DEBUG = log.New(os.Stdout, "", 0)
	mqtt.ERROR = log.New(os.Stdout, "", 0)

	// Parse command line parameters
	configPath := flag.String("config", "config.yaml", "YAML config file.")
	resultsPath := flag.String("results", "", "Search results JSON file.")
	domainsPath := flag.String("domains", "", "Flattened InterPro matches JSON file.")
	flag.Parse()

	if *resultsPath == "" && *domainsPath == "" {
		log.Fatal("Nothing to draw: pass -results and/or -domains")
	}

	// Read the config and the data to draw
	a := newApp()
	a.readConfig(*configPath)
	log.Printf("Config: %+v", a.Config.Display)
	a.readResults(*resultsPath, *domainsPath)

	controller, err := stream.NewController(a.Config, a.Input)
	if err != nil {
		panic(err)
	}
	a.Controller = controller

	server := api.NewApi(a.Controller, a.Config.HTTP.StaticDir)
	go func() {
		if err := server.Serve(a.Config.HTTP.Listen); err != nil {
			log.Fatal(err)
		}
	}()

	if a.Config.Mqtt.URL == "" {
		log.Println("No MQTT broker configured, serving over HTTP only")
		for range time.Tick(a.Config.FrameInterval()) {
			a.Controller.CalculateFrame()
		}
	}

	options := mqtt.NewClientOptions().
		AddBroker(a.Config.Mqtt.URL).
		SetClientID(a.Config.Mqtt.ClientID).
		SetUsername(a.Config.Mqtt.Username).
		SetPassword(a.Config.Mqtt.Password).
		SetKeepAlive(30 * time.Second).
		SetPingTimeout(5 * time.Second).
		SetOnConnectHandler(a.handleOnConnect)
	a.Client = mqtt.NewClient(options)
	a.Streamer = stream.NewStreamer(a.Config, a.Client, a.Controller)

	a.run()
}
