package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"

	"chat-client/domain"
	"chat-client/domain/event"
	"chat-client/observability"
	"chat-client/registry"
)

// printer renders dispatched events as they arrive. It is a read-only
// observer: all state changes happened in the dispatcher already.
type printer struct{}

func newPrinter() *printer {
	return &printer{}
}

func (p *printer) Handle(e event.Event) {
	switch evt := e.(type) {
	case event.MessageReceived:
		room := evt.RoomName
		if room == "" {
			room = string(evt.RoomID)
		}
		color.Cyan.Printf("[%s] %s: ", room, evt.Sender.Name)
		fmt.Println(evt.Text)
	case event.UserJoined:
		color.Green.Printf("-- %s joined\n", evt.User.Name)
	case event.UserLeft:
		color.Yellow.Printf("-- %s left\n", evt.User.Name)
	case event.RoomJoined:
		color.Magenta.Printf("-- entered room %s\n", evt.RoomName)
	}
}

func printWarning(msg string) {
	color.Yellow.Println(msg)
}

func reportIfError(err error) {
	if err != nil {
		color.Red.Printf("Error: %v\n", err)
	}
}

func newTable(headers []string) *tablewriter.Table {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader(headers)
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)
	return table
}

func renderRooms(rooms []registry.RoomView) {
	table := newTable([]string{"ID", "Name", "Private", "Messages"})
	for _, room := range rooms {
		table.Append([]string{
			string(room.ID),
			room.Name,
			strconv.FormatBool(room.Private),
			strconv.Itoa(len(room.Messages)),
		})
	}
	table.Render()
}

func renderUsers(users []domain.User) {
	table := newTable([]string{"ID", "Name"})
	for _, user := range users {
		table.Append([]string{string(user.ID), user.Name})
	}
	table.Render()
}

func renderStats(snapshot observability.StatsSnapshot) {
	table := newTable([]string{"Applied", "Malformed", "Unknown", "Dropped"})
	table.Append([]string{
		strconv.FormatUint(snapshot.EventsApplied, 10),
		strconv.FormatUint(snapshot.MalformedSegments, 10),
		strconv.FormatUint(snapshot.UnknownActions, 10),
		strconv.FormatUint(snapshot.DroppedEvents, 10),
	})
	table.Render()
}
