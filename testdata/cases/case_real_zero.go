package main

var a = 5 / 0.0
